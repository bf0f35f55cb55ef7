package models

// Roles de usuario reconocidos por el backend.
const (
	RolCandidato  = "candidato"
	RolEmpresa    = "empresa"
	RolReclutador = "reclutador"
)

// EstadoEducacion describe el avance de un registro de educación.
type EstadoEducacion string

const (
	EducacionCompletado EstadoEducacion = "completado"
	EducacionEnCurso    EstadoEducacion = "en_curso"
	EducacionIncompleto EstadoEducacion = "incompleto"
)

// EstadoVacante es el único campo de ciclo de vida mutable de una vacante.
type EstadoVacante string

const (
	VacanteAbierta EstadoVacante = "abierta"
	VacanteCerrada EstadoVacante = "cerrada"
	VacantePausada EstadoVacante = "pausada"
)

// EstadoCurso indica el avance del candidato en un curso recomendado.
type EstadoCurso string

const (
	CursoPendiente  EstadoCurso = "pendiente"
	CursoEnProgreso EstadoCurso = "en_progreso"
	CursoCompletado EstadoCurso = "completado"
)

// ChatRole identifica al autor de un mensaje del chatbot.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// Escala de nivel para habilidades e idiomas.
const (
	NivelMinimo = 1
	NivelMaximo = 5
)
