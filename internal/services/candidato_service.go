package services

import (
	"context"
	"io"
	"net/http"

	"github.com/smarthire/smarthire_client/models"
)

const (
	candidatoProfilePath = "/candidatos/profile"
	candidatoHabilidades = candidatoProfilePath + "/habilidades"
	candidatoIdiomas     = candidatoProfilePath + "/idiomas"
	fotoField            = "file"
)

// CandidatoService opera sobre el perfil del candidato autenticado.
type CandidatoService struct {
	api Requester
}

func NewCandidatoService(api Requester) *CandidatoService {
	return &CandidatoService{api: api}
}

// GetProfile trae el perfil con habilidades, idiomas y conteo de postulaciones.
func (s *CandidatoService) GetProfile(ctx context.Context) (*models.CandidatoProfile, error) {
	var out models.CandidatoProfile
	if err := s.api.Do(ctx, http.MethodGet, candidatoProfilePath, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile envía sólo los campos no nil.
func (s *CandidatoService) UpdateProfile(ctx context.Context, dto models.UpdateCandidatoProfileDTO) (*models.CandidatoProfile, error) {
	var out models.CandidatoProfile
	if err := s.api.Do(ctx, http.MethodPatch, candidatoProfilePath, nil, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParseCV envía la imagen del CV (data URL, ver helpers.ImageDataURL) para que el servidor
// extraiga el perfil. La forma de la respuesta la define el servidor.
func (s *CandidatoService) ParseCV(ctx context.Context, imageData string) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	req := models.ParseCVRequest{ImageData: imageData}
	if err := s.api.Do(ctx, http.MethodPost, candidatoProfilePath+"/parse-cv", nil, req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CandidatoService) AddHabilidad(ctx context.Context, dto models.HabilidadNivelDTO) (*models.CandidatoHabilidad, error) {
	var out models.CandidatoHabilidad
	if err := s.api.Do(ctx, http.MethodPost, candidatoHabilidades, nil, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CandidatoService) UpdateHabilidad(ctx context.Context, id string, nivel int) (*models.CandidatoHabilidad, error) {
	var out models.CandidatoHabilidad
	if err := s.api.Do(ctx, http.MethodPut, path(candidatoHabilidades, id), nil, models.NivelDTO{Nivel: nivel}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CandidatoService) RemoveHabilidad(ctx context.Context, id string) error {
	return s.api.Do(ctx, http.MethodDelete, path(candidatoHabilidades, id), nil, nil, nil)
}

func (s *CandidatoService) AddIdioma(ctx context.Context, dto models.IdiomaNivelDTO) (*models.CandidatoIdioma, error) {
	var out models.CandidatoIdioma
	if err := s.api.Do(ctx, http.MethodPost, candidatoIdiomas, nil, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CandidatoService) UpdateIdioma(ctx context.Context, id string, nivel int) (*models.CandidatoIdioma, error) {
	var out models.CandidatoIdioma
	if err := s.api.Do(ctx, http.MethodPut, path(candidatoIdiomas, id), nil, models.NivelDTO{Nivel: nivel}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CandidatoService) RemoveIdioma(ctx context.Context, id string) error {
	return s.api.Do(ctx, http.MethodDelete, path(candidatoIdiomas, id), nil, nil, nil)
}

// GetRecomendaciones trae las recomendaciones calculadas por el servidor.
func (s *CandidatoService) GetRecomendaciones(ctx context.Context) ([]models.Recomendacion, error) {
	out := []models.Recomendacion{}
	if err := s.api.Do(ctx, http.MethodGet, "/candidatos/recomendaciones", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadFoto sube la foto de perfil como multipart y devuelve la URL asignada.
func (s *CandidatoService) UploadFoto(ctx context.Context, filename string, r io.Reader) (*models.FotoPerfilResponse, error) {
	var out models.FotoPerfilResponse
	if err := s.api.Upload(ctx, candidatoProfilePath+"/upload-photo", fotoField, filename, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
