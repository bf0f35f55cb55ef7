package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/beego/beego/v2/core/logs"

	"github.com/smarthire/smarthire_client/internal/session"
	"github.com/smarthire/smarthire_client/internal/storage"
	"github.com/smarthire/smarthire_client/models"
)

// AuthService es el único que escribe el token en el store.
type AuthService struct {
	api   Requester
	store storage.Store
}

func NewAuthService(api Requester, store storage.Store) *AuthService {
	return &AuthService{api: api, store: store}
}

// Login autentica y guarda token + usuario; las siguientes peticiones llevan el Bearer.
func (s *AuthService) Login(ctx context.Context, dto models.LoginDTO) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := s.api.Do(ctx, http.MethodPost, "/auth/login", nil, dto, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, fmt.Errorf("login sin access_token para %s", dto.Email)
	}
	if err := session.Save(ctx, s.store, out.AccessToken, out.User); err != nil {
		return nil, fmt.Errorf("guardando sesión: %w", err)
	}
	logs.Info("sesión iniciada usuario=%s rol=%s", out.User.Email, out.User.Rol)
	return &out, nil
}

// Logout borra la sesión local. No llama al servidor.
func (s *AuthService) Logout(ctx context.Context) error {
	return session.Clear(ctx, s.store)
}

// Register crea la cuenta sin iniciar sesión.
func (s *AuthService) Register(ctx context.Context, dto models.RegisterDTO) (*models.Usuario, error) {
	var out models.Usuario
	if err := s.api.Do(ctx, http.MethodPost, "/auth/register", nil, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
