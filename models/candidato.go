package models

// Usuario es la información de cuenta anidada en perfiles y sesiones.
type Usuario struct {
	Id         FlexInt        `json:"id"`
	Nombre     string         `json:"nombre"`
	Apellido   string         `json:"apellido,omitempty"`
	Email      string         `json:"email"`
	Rol        string         `json:"rol,omitempty"`
	Candidato  *UsuarioPerfil `json:"candidato,omitempty"`
	Empresa    *UsuarioPerfil `json:"empresa,omitempty"`
	Reclutador *UsuarioPerfil `json:"reclutador,omitempty"`
}

// UsuarioPerfil referencia el perfil de rol asociado a la cuenta.
type UsuarioPerfil struct {
	Id FlexInt `json:"id"`
}

// CandidatoHabilidad es una entrada habilidad + nivel del perfil.
type CandidatoHabilidad struct {
	Id          FlexInt    `json:"id"`
	HabilidadId FlexInt    `json:"habilidad_id"`
	Nivel       int        `json:"nivel"`
	Habilidad   *Habilidad `json:"habilidad,omitempty"`
}

// CandidatoIdioma es una entrada idioma + nivel del perfil.
type CandidatoIdioma struct {
	Id       FlexInt `json:"id"`
	IdiomaId FlexInt `json:"idioma_id"`
	Nivel    int     `json:"nivel"`
	Idioma   *Idioma `json:"idioma,omitempty"`
}

// ConteoPostulaciones corresponde al bloque _count del backend.
type ConteoPostulaciones struct {
	Postulaciones int `json:"postulaciones"`
}

// CandidatoProfile es el perfil del candidato autenticado.
type CandidatoProfile struct {
	Id            FlexInt              `json:"id"`
	UsuarioId     FlexInt              `json:"usuario_id,omitempty"`
	Titulo        *string              `json:"titulo"`
	Bio           *string              `json:"bio"`
	Ubicacion     *string              `json:"ubicacion"`
	FotoPerfilURL *string              `json:"foto_perfil_url"`
	Usuario       *Usuario             `json:"usuario,omitempty"`
	Habilidades   []CandidatoHabilidad `json:"habilidades,omitempty"`
	Idiomas       []CandidatoIdioma    `json:"idiomas,omitempty"`
	Count         *ConteoPostulaciones `json:"_count,omitempty"`
}

// UpdateCandidatoProfileDTO permite actualizar parcialmente el perfil; los nil no se envían.
type UpdateCandidatoProfileDTO struct {
	Titulo    *string `json:"titulo,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Ubicacion *string `json:"ubicacion,omitempty"`
	Nombre    *string `json:"nombre,omitempty"`
	Apellido  *string `json:"apellido,omitempty"`
}

// ParseCVRequest transporta la imagen del CV como data URL.
type ParseCVRequest struct {
	ImageData string `json:"imageData"`
}

// HabilidadNivelDTO agrega una habilidad del catálogo al perfil.
type HabilidadNivelDTO struct {
	HabilidadId int `json:"habilidadId"`
	Nivel       int `json:"nivel"`
}

// IdiomaNivelDTO agrega un idioma del catálogo al perfil.
type IdiomaNivelDTO struct {
	IdiomaId int `json:"idiomaId"`
	Nivel    int `json:"nivel"`
}

// NivelDTO actualiza el nivel de una entrada existente.
type NivelDTO struct {
	Nivel int `json:"nivel"`
}

// FotoPerfilResponse es la respuesta de la carga de foto.
type FotoPerfilResponse struct {
	FotoPerfilURL string `json:"foto_perfil_url"`
}
