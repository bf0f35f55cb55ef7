package services

import (
	"context"
	"net/http"

	"github.com/smarthire/smarthire_client/models"
)

// IdiomasService consulta el catálogo de idiomas.
type IdiomasService struct {
	api Requester
}

func NewIdiomasService(api Requester) *IdiomasService {
	return &IdiomasService{api: api}
}

func (s *IdiomasService) List(ctx context.Context) ([]models.Idioma, error) {
	out := []models.Idioma{}
	if err := s.api.Do(ctx, http.MethodGet, "/idiomas", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *IdiomasService) Get(ctx context.Context, id string) (*models.Idioma, error) {
	var out models.Idioma
	if err := s.api.Do(ctx, http.MethodGet, path("/idiomas", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HabilidadesService consulta el catálogo compartido de habilidades.
type HabilidadesService struct {
	api Requester
}

func NewHabilidadesService(api Requester) *HabilidadesService {
	return &HabilidadesService{api: api}
}

func (s *HabilidadesService) List(ctx context.Context) ([]models.Habilidad, error) {
	out := []models.Habilidad{}
	if err := s.api.Do(ctx, http.MethodGet, "/habilidades", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HabilidadesService) Get(ctx context.Context, id string) (*models.Habilidad, error) {
	var out models.Habilidad
	if err := s.api.Do(ctx, http.MethodGet, path("/habilidades", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
