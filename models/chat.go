package models

// ChatRequest es la entrada de ChatService.SendMessage. SessionId y Contexto vacíos no se envían.
type ChatRequest struct {
	Mensaje   string
	SessionId string
	Contexto  string
}

// ChatResponse devuelve la sesión emitida por el servidor y la respuesta del asistente.
type ChatResponse struct {
	SessionId string `json:"sessionId"`
	Respuesta string `json:"respuesta"`
}

// ChatHistory es un mensaje del historial de una sesión.
type ChatHistory struct {
	Id            FlexInt  `json:"id,omitempty"`
	SessionId     string   `json:"sessionId,omitempty"`
	Role          ChatRole `json:"role"`
	Mensaje       string   `json:"mensaje"`
	Contexto      *string  `json:"contexto,omitempty"`
	FechaCreacion FlexTime `json:"fecha_creacion"`
}
