package services

import (
	"context"
	"net/http"

	"github.com/smarthire/smarthire_client/models"
)

const (
	educacionPath   = "/educacion"
	experienciaPath = "/experiencia"
)

// EducacionService administra los registros académicos del candidato.
type EducacionService struct {
	api Requester
}

func NewEducacionService(api Requester) *EducacionService {
	return &EducacionService{api: api}
}

// Create valida el payload antes de enviarlo; un error de validación no genera petición.
func (s *EducacionService) Create(ctx context.Context, dto models.CreateEducacionDTO) (*models.Educacion, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	var out models.Educacion
	if err := s.api.Do(ctx, http.MethodPost, educacionPath, nil, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EducacionService) List(ctx context.Context) ([]models.Educacion, error) {
	out := []models.Educacion{}
	if err := s.api.Do(ctx, http.MethodGet, educacionPath, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EducacionService) Get(ctx context.Context, id string) (*models.Educacion, error) {
	var out models.Educacion
	if err := s.api.Do(ctx, http.MethodGet, path(educacionPath, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update hace PATCH con los campos no nil.
func (s *EducacionService) Update(ctx context.Context, id string, dto models.UpdateEducacionDTO) (*models.Educacion, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	var out models.Educacion
	if err := s.api.Do(ctx, http.MethodPatch, path(educacionPath, id), nil, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EducacionService) Delete(ctx context.Context, id string) error {
	return s.api.Do(ctx, http.MethodDelete, path(educacionPath, id), nil, nil, nil)
}

// ExperienciaService administra la trayectoria laboral del candidato.
type ExperienciaService struct {
	api Requester
}

func NewExperienciaService(api Requester) *ExperienciaService {
	return &ExperienciaService{api: api}
}

func (s *ExperienciaService) Create(ctx context.Context, dto models.CreateExperienciaDTO) (*models.Experiencia, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	var out models.Experiencia
	if err := s.api.Do(ctx, http.MethodPost, experienciaPath, nil, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ExperienciaService) List(ctx context.Context) ([]models.Experiencia, error) {
	out := []models.Experiencia{}
	if err := s.api.Do(ctx, http.MethodGet, experienciaPath, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ExperienciaService) Get(ctx context.Context, id string) (*models.Experiencia, error) {
	var out models.Experiencia
	if err := s.api.Do(ctx, http.MethodGet, path(experienciaPath, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ExperienciaService) Update(ctx context.Context, id string, dto models.UpdateExperienciaDTO) (*models.Experiencia, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	var out models.Experiencia
	if err := s.api.Do(ctx, http.MethodPatch, path(experienciaPath, id), nil, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ExperienciaService) Delete(ctx context.Context, id string) error {
	return s.api.Do(ctx, http.MethodDelete, path(experienciaPath, id), nil, nil, nil)
}
