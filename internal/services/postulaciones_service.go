package services

import (
	"context"
	"net/http"

	internalhelpers "github.com/smarthire/smarthire_client/internal/helpers"
	"github.com/smarthire/smarthire_client/models"
)

const postulacionesPath = "/postulaciones"

// PostulacionesService maneja las postulaciones. Los permisos por rol los valida el servidor.
type PostulacionesService struct {
	api Requester
}

func NewPostulacionesService(api Requester) *PostulacionesService {
	return &PostulacionesService{api: api}
}

// Create postula al candidato autenticado a la vacante.
func (s *PostulacionesService) Create(ctx context.Context, vacanteID int) (*models.Postulacion, error) {
	var out models.Postulacion
	if err := s.api.Do(ctx, http.MethodPost, postulacionesPath, nil, models.CreatePostulacionDTO{VacanteId: vacanteID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMine pagina las postulaciones del candidato. page/limit < 1 usan 1 y 10.
func (s *PostulacionesService) ListMine(ctx context.Context, page, limit int) (*models.PaginatedResponse[models.Postulacion], error) {
	var out models.PaginatedResponse[models.Postulacion]
	err := s.api.Do(ctx, http.MethodGet, postulacionesPath+"/mis-postulaciones", internalhelpers.PageQuery(page, limit), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByVacante pagina las postulaciones recibidas por una vacante (vista empresa/reclutador).
func (s *PostulacionesService) ListByVacante(ctx context.Context, vacanteID string, page, limit int) (*models.PaginatedResponse[models.Postulacion], error) {
	var out models.PaginatedResponse[models.Postulacion]
	err := s.api.Do(ctx, http.MethodGet, path(postulacionesPath+"/vacante", vacanteID), internalhelpers.PageQuery(page, limit), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PostulacionesService) Get(ctx context.Context, id string) (*models.Postulacion, error) {
	var out models.Postulacion
	if err := s.api.Do(ctx, http.MethodGet, path(postulacionesPath, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PostulacionesService) Delete(ctx context.Context, id string) error {
	return s.api.Do(ctx, http.MethodDelete, path(postulacionesPath, id), nil, nil, nil)
}
