package models

// Postulacion representa la postulación de un candidato a una vacante.
// La profundidad de Candidato/Vacante depende del endpoint.
type Postulacion struct {
	Id                       FlexInt           `json:"id"`
	CandidatoId              FlexInt           `json:"candidato_id"`
	VacanteId                FlexInt           `json:"vacante_id"`
	FechaCreacion            FlexTime          `json:"fecha_creacion"`
	PuntuacionCompatibilidad *float64          `json:"puntuacion_compatibilidad,omitempty"`
	Candidato                *CandidatoProfile `json:"candidato,omitempty"`
	Vacante                  *Vacante          `json:"vacante,omitempty"`
}

// CreatePostulacionDTO es el payload mínimo para postularse.
type CreatePostulacionDTO struct {
	VacanteId int `json:"vacanteId"`
}

// Curso es un curso sugerido para cerrar una brecha de habilidades.
type Curso struct {
	Id        FlexInt `json:"id"`
	Nombre    string  `json:"nombre"`
	URL       *string `json:"url,omitempty"`
	Proveedor *string `json:"proveedor,omitempty"`
}

// RecomendacionCurso asocia un curso a una recomendación con su estado.
type RecomendacionCurso struct {
	Id     FlexInt     `json:"id"`
	Estado EstadoCurso `json:"estado"`
	Curso  *Curso      `json:"curso,omitempty"`
}

// Recomendacion es calculada por el servidor y es de sólo lectura.
type Recomendacion struct {
	Id                FlexInt              `json:"id"`
	Mensaje           string               `json:"mensaje"`
	CandidatoId       FlexInt              `json:"candidato_id"`
	VacanteId         FlexInt              `json:"vacante_id"`
	FechaCreacion     FlexTime             `json:"fecha_creacion"`
	Vacante           *Vacante             `json:"vacante,omitempty"`
	HabilidadFaltante *Habilidad           `json:"habilidad_faltante,omitempty"`
	Cursos            []RecomendacionCurso `json:"cursos"`
}
