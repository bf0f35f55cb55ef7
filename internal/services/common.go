// Package services expone un servicio tipado por recurso del API de SmartHire.
// Cada método hace exactamente una llamada y devuelve los errores sin modificar.
package services

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/smarthire/smarthire_client/internal/clients"
	"github.com/smarthire/smarthire_client/internal/storage"
)

// Requester es lo que los servicios necesitan del cliente HTTP. *clients.APIClient lo implementa.
type Requester interface {
	Do(ctx context.Context, method, path string, query url.Values, in, out any) error
	Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error
}

var _ Requester = (*clients.APIClient)(nil)

// Services agrupa todos los servicios sobre un mismo cliente.
type Services struct {
	Auth          *AuthService
	Candidato     *CandidatoService
	Educacion     *EducacionService
	Experiencia   *ExperienciaService
	Idiomas       *IdiomasService
	Habilidades   *HabilidadesService
	Postulaciones *PostulacionesService
	Vacantes      *VacantesService
	Chat          *ChatService
}

// New arma los servicios sobre api; store es donde AuthService guarda la sesión.
func New(api Requester, store storage.Store) *Services {
	return &Services{
		Auth:          NewAuthService(api, store),
		Candidato:     NewCandidatoService(api),
		Educacion:     NewEducacionService(api),
		Experiencia:   NewExperienciaService(api),
		Idiomas:       NewIdiomasService(api),
		Habilidades:   NewHabilidadesService(api),
		Postulaciones: NewPostulacionesService(api),
		Vacantes:      NewVacantesService(api),
		Chat:          NewChatService(api),
	}
}

// Default usa el cliente del proceso (clients.API) y su store.
func Default() *Services {
	api := clients.API()
	return New(api, api.Store())
}

// path une segmentos escapando cada id.
func path(base string, ids ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, id := range ids {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(id))
	}
	return b.String()
}
