// Package session expone la sesión guardada localmente como un descriptor tipado.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smarthire/smarthire_client/internal/storage"
	"github.com/smarthire/smarthire_client/models"
)

// Session es el contenido de las claves "token" y "user" del store.
type Session struct {
	Token string
	User  *models.Usuario
}

// Load lee la sesión del store. Una sesión sin claves es válida y no tiene rol.
func Load(ctx context.Context, store storage.Store) (*Session, error) {
	token, _, err := store.Get(ctx, storage.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("leyendo token: %w", err)
	}
	s := &Session{Token: strings.TrimSpace(token)}

	raw, ok, err := store.Get(ctx, storage.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("leyendo usuario: %w", err)
	}
	if ok && strings.TrimSpace(raw) != "" {
		var user models.Usuario
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, fmt.Errorf("usuario de sesión inválido: %w", err)
		}
		s.User = &user
	}
	return s, nil
}

// Save guarda token y usuario tras un inicio de sesión.
// El token se escribe al final: si falla, se borra lo escrito y no queda una sesión a medias.
func Save(ctx context.Context, store storage.Store, token string, user models.Usuario) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := store.Set(ctx, storage.KeyUser, string(payload)); err != nil {
		return fmt.Errorf("guardando usuario: %w", err)
	}
	if err := store.Set(ctx, storage.KeyToken, token); err != nil {
		if cerr := Clear(ctx, store); cerr != nil {
			return fmt.Errorf("guardando token: %w (limpieza: %v)", err, cerr)
		}
		return fmt.Errorf("guardando token: %w", err)
	}
	return nil
}

// Clear borra la sesión local.
func Clear(ctx context.Context, store storage.Store) error {
	if err := store.Delete(ctx, storage.KeyToken); err != nil {
		return err
	}
	return store.Delete(ctx, storage.KeyUser)
}

// Rol devuelve el rol normalizado de la sesión, o "" si no se conoce.
// Se prefiere el usuario guardado; si no existe se leen los claims del token sin verificar la firma.
func (s *Session) Rol() string {
	if s == nil {
		return ""
	}
	if s.User != nil {
		if rol := strings.ToLower(strings.TrimSpace(s.User.Rol)); rol != "" {
			return rol
		}
		switch {
		case s.User.Candidato != nil:
			return models.RolCandidato
		case s.User.Reclutador != nil:
			return models.RolReclutador
		case s.User.Empresa != nil:
			return models.RolEmpresa
		}
	}
	return rolFromToken(s.Token)
}

// IsCandidato es el único predicado que habilita llamadas exclusivas del candidato.
func (s *Session) IsCandidato() bool {
	return s.Rol() == models.RolCandidato
}

// IsEmpresa indica una sesión de empresa.
func (s *Session) IsEmpresa() bool {
	return s.Rol() == models.RolEmpresa
}

// IsReclutador indica una sesión de reclutador.
func (s *Session) IsReclutador() bool {
	return s.Rol() == models.RolReclutador
}

func rolFromToken(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, key := range []string{"rol", "role"} {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.ToLower(strings.TrimSpace(v))
		}
	}
	if roles := parseRolesValue(claims["roles"]); len(roles) > 0 {
		return strings.ToLower(roles[0])
	}
	return ""
}

func parseRolesValue(raw interface{}) []string {
	switch v := raw.(type) {
	case string:
		result := []string{}
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if r, ok := item.(string); ok && strings.TrimSpace(r) != "" {
				result = append(result, strings.TrimSpace(r))
			}
		}
		return result
	default:
		return nil
	}
}
