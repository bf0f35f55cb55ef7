package models

// Educacion es un registro académico del candidato.
type Educacion struct {
	Id          FlexInt         `json:"id"`
	CandidatoId FlexInt         `json:"candidato_id,omitempty"`
	Titulo      string          `json:"titulo"`
	Institucion string          `json:"institucion"`
	Descripcion *string         `json:"descripcion"`
	Estado      EstadoEducacion `json:"estado"`
	FechaInicio FlexTime        `json:"fecha_inicio"`
	// FechaFinal es nil mientras el estudio está en curso.
	FechaFinal *FlexTime `json:"fecha_final"`
}

// CreateEducacionDTO es el payload de creación de educación.
// FechaInicio es obligatoria: Validate la rechaza en cero.
type CreateEducacionDTO struct {
	Titulo      string          `json:"titulo" validate:"required"`
	Institucion string          `json:"institucion" validate:"required"`
	Descripcion *string         `json:"descripcion,omitempty"`
	Estado      EstadoEducacion `json:"estado" validate:"required,oneof=completado en_curso incompleto"`
	FechaInicio FlexTime        `json:"fecha_inicio" validate:"required"`
	FechaFinal  *FlexTime       `json:"fecha_final,omitempty"`
}

// UpdateEducacionDTO permite actualizar parcialmente un registro de educación.
type UpdateEducacionDTO struct {
	Titulo      *string          `json:"titulo,omitempty"`
	Institucion *string          `json:"institucion,omitempty"`
	Descripcion *string          `json:"descripcion,omitempty"`
	Estado      *EstadoEducacion `json:"estado,omitempty" validate:"omitempty,oneof=completado en_curso incompleto"`
	FechaInicio *FlexTime        `json:"fecha_inicio,omitempty"`
	FechaFinal  *FlexTime        `json:"fecha_final,omitempty"`
}

// Experiencia es un registro laboral del candidato.
type Experiencia struct {
	Id          FlexInt  `json:"id"`
	CandidatoId FlexInt  `json:"candidato_id,omitempty"`
	Titulo      string   `json:"titulo"`
	Empresa     string   `json:"empresa"`
	Descripcion *string  `json:"descripcion"`
	Ubicacion   *string  `json:"ubicacion"`
	FechaInicio FlexTime `json:"fecha_inicio"`
	// FechaFinal es nil para el cargo actual.
	FechaFinal *FlexTime `json:"fecha_final"`
}

// CreateExperienciaDTO es el payload de creación de experiencia.
type CreateExperienciaDTO struct {
	Titulo      string    `json:"titulo" validate:"required"`
	Empresa     string    `json:"empresa" validate:"required"`
	Descripcion *string   `json:"descripcion,omitempty"`
	Ubicacion   *string   `json:"ubicacion,omitempty"`
	FechaInicio FlexTime  `json:"fecha_inicio" validate:"required"`
	FechaFinal  *FlexTime `json:"fecha_final,omitempty"`
}

// UpdateExperienciaDTO permite actualizar parcialmente un registro de experiencia.
type UpdateExperienciaDTO struct {
	Titulo      *string   `json:"titulo,omitempty"`
	Empresa     *string   `json:"empresa,omitempty"`
	Descripcion *string   `json:"descripcion,omitempty"`
	Ubicacion   *string   `json:"ubicacion,omitempty"`
	FechaInicio *FlexTime `json:"fecha_inicio,omitempty"`
	FechaFinal  *FlexTime `json:"fecha_final,omitempty"`
}
