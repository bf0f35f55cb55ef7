package models

// Empresa es la compañía dueña de una vacante.
type Empresa struct {
	Id          FlexInt `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
	Ubicacion   *string `json:"ubicacion,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

// VacanteHabilidad es un requisito de habilidad de la vacante.
type VacanteHabilidad struct {
	HabilidadId    FlexInt    `json:"habilidad_id"`
	NivelRequerido *int       `json:"nivel_requerido,omitempty"`
	Habilidad      *Habilidad `json:"habilidad,omitempty"`
}

// VacanteIdioma es un requisito de idioma de la vacante.
type VacanteIdioma struct {
	IdiomaId FlexInt `json:"idioma_id"`
	Nivel    *int    `json:"nivel,omitempty"`
	Idioma   *Idioma `json:"idioma,omitempty"`
}

// Vacante representa una oferta de empleo publicada por una empresa.
type Vacante struct {
	Id            FlexInt              `json:"id"`
	Titulo        string               `json:"titulo"`
	Descripcion   string               `json:"descripcion"`
	SalarioMinimo *float64             `json:"salario_minimo"`
	SalarioMaximo *float64             `json:"salario_maximo"`
	FechaCreacion FlexTime             `json:"fecha_creacion"`
	Estado        EstadoVacante        `json:"estado"`
	EmpresaId     FlexInt              `json:"empresa_id"`
	ReclutadorId  FlexInt              `json:"reclutador_id"`
	ModalidadId   FlexInt              `json:"modalidad_id"`
	HorarioId     FlexInt              `json:"horario_id"`
	Empresa       *Empresa             `json:"empresa,omitempty"`
	Modalidad     *Modalidad           `json:"modalidad,omitempty"`
	Horario       *Horario             `json:"horario,omitempty"`
	Habilidades   []VacanteHabilidad   `json:"habilidades,omitempty"`
	Idiomas       []VacanteIdioma      `json:"idiomas,omitempty"`
	Count         *ConteoPostulaciones `json:"_count,omitempty"`
}

// CreateVacanteDTO es el payload para publicar una vacante.
type CreateVacanteDTO struct {
	Titulo        string        `json:"titulo"`
	Descripcion   string        `json:"descripcion"`
	SalarioMinimo *float64      `json:"salario_minimo,omitempty"`
	SalarioMaximo *float64      `json:"salario_maximo,omitempty"`
	ModalidadId   int           `json:"modalidad_id"`
	HorarioId     int           `json:"horario_id"`
	Estado        EstadoVacante `json:"estado,omitempty"`
}

// UpdateVacanteDTO permite actualizar parcialmente una vacante.
type UpdateVacanteDTO struct {
	Titulo        *string  `json:"titulo,omitempty"`
	Descripcion   *string  `json:"descripcion,omitempty"`
	SalarioMinimo *float64 `json:"salario_minimo,omitempty"`
	SalarioMaximo *float64 `json:"salario_maximo,omitempty"`
	ModalidadId   *int     `json:"modalidad_id,omitempty"`
	HorarioId     *int     `json:"horario_id,omitempty"`
}

// VacanteEstadoDTO se usa para cambiar sólo el estado de una vacante.
type VacanteEstadoDTO struct {
	Estado EstadoVacante `json:"estado"`
}

// VacanteHabilidadDTO agrega un requisito de habilidad.
type VacanteHabilidadDTO struct {
	HabilidadId    int  `json:"habilidadId"`
	NivelRequerido *int `json:"nivelRequerido,omitempty"`
}

// VacanteIdiomaDTO agrega un requisito de idioma.
type VacanteIdiomaDTO struct {
	IdiomaId int  `json:"idiomaId"`
	Nivel    *int `json:"nivel,omitempty"`
}

// VacanteFilters son los filtros por igualdad de GET /vacantes. Los campos vacíos no se envían.
type VacanteFilters struct {
	Estado      EstadoVacante
	EmpresaId   string
	ModalidadId string
}
