package services

import (
	"context"
	"net/http"

	internalhelpers "github.com/smarthire/smarthire_client/internal/helpers"
	"github.com/smarthire/smarthire_client/models"
)

const chatbotPath = "/chatbot"

// ChatService habla con el asistente. El sessionId lo emite el servidor en la primera respuesta.
type ChatService struct {
	api Requester
}

func NewChatService(api Requester) *ChatService {
	return &ChatService{api: api}
}

// SendMessage envía el mensaje; sessionId y contexto sólo viajan si tienen valor.
func (s *ChatService) SendMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	body := internalhelpers.NewBody().
		Set("mensaje", req.Mensaje).
		SetIfNotEmpty("sessionId", req.SessionId).
		SetIfNotEmpty("contexto", req.Contexto)

	var out models.ChatResponse
	if err := s.api.Do(ctx, http.MethodPost, chatbotPath+"/chat", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ChatService) GetHistory(ctx context.Context, sessionID string) ([]models.ChatHistory, error) {
	out := []models.ChatHistory{}
	if err := s.api.Do(ctx, http.MethodGet, path(chatbotPath+"/session", sessionID)+"/history", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ChatService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.api.Do(ctx, http.MethodDelete, path(chatbotPath+"/session", sessionID), nil, nil, nil)
}
