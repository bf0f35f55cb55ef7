package models

// Idioma es un registro del catálogo de idiomas.
type Idioma struct {
	Id     FlexInt `json:"id"`
	Nombre string  `json:"nombre"`
}

// Habilidad es un registro del catálogo compartido de habilidades.
type Habilidad struct {
	Id        FlexInt `json:"id"`
	Nombre    string  `json:"nombre"`
	Categoria string  `json:"categoria,omitempty"`
}

// Modalidad de trabajo de una vacante (presencial, remoto, híbrido...).
type Modalidad struct {
	Id     FlexInt `json:"id"`
	Nombre string  `json:"nombre"`
}

// Horario de trabajo de una vacante (tiempo completo, medio tiempo...).
type Horario struct {
	Id     FlexInt `json:"id"`
	Nombre string  `json:"nombre"`
}
