package services

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	internalhelpers "github.com/smarthire/smarthire_client/internal/helpers"
	"github.com/smarthire/smarthire_client/models"
)

const vacantesPath = "/vacantes"

// VacantesService administra las vacantes y sus requisitos.
type VacantesService struct {
	api Requester
}

func NewVacantesService(api Requester) *VacantesService {
	return &VacantesService{api: api}
}

// List consulta las vacantes. Con filters nil no se envía query string;
// de lo contrario sólo viajan los filtros con valor.
func (s *VacantesService) List(ctx context.Context, filters *models.VacanteFilters) ([]models.Vacante, error) {
	out := []models.Vacante{}
	if err := s.api.Do(ctx, http.MethodGet, vacantesPath, vacanteQuery(filters), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func vacanteQuery(filters *models.VacanteFilters) url.Values {
	q := url.Values{}
	if filters == nil {
		return q
	}
	if v := strings.TrimSpace(string(filters.Estado)); v != "" {
		q.Set("estado", v)
	}
	if v := strings.TrimSpace(filters.EmpresaId); v != "" {
		q.Set("empresaId", v)
	}
	if v := strings.TrimSpace(filters.ModalidadId); v != "" {
		q.Set("modalidadId", v)
	}
	return q
}

func (s *VacantesService) Get(ctx context.Context, id string) (*models.Vacante, error) {
	var out models.Vacante
	if err := s.api.Do(ctx, http.MethodGet, path(vacantesPath, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VacantesService) Create(ctx context.Context, dto models.CreateVacanteDTO) (*models.Vacante, error) {
	var out models.Vacante
	if err := s.api.Do(ctx, http.MethodPost, vacantesPath, nil, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VacantesService) Update(ctx context.Context, id string, dto models.UpdateVacanteDTO) (*models.Vacante, error) {
	var out models.Vacante
	if err := s.api.Do(ctx, http.MethodPatch, path(vacantesPath, id), nil, dto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VacantesService) Delete(ctx context.Context, id string) error {
	return s.api.Do(ctx, http.MethodDelete, path(vacantesPath, id), nil, nil, nil)
}

// UpdateEstado cambia sólo el estado (abierta/cerrada/pausada).
func (s *VacantesService) UpdateEstado(ctx context.Context, id string, estado models.EstadoVacante) (*models.Vacante, error) {
	var out models.Vacante
	body := models.VacanteEstadoDTO{Estado: estado}
	if err := s.api.Do(ctx, http.MethodPatch, path(vacantesPath, id)+"/estado", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddHabilidad agrega un requisito; nivelRequerido sólo viaja si se indica.
func (s *VacantesService) AddHabilidad(ctx context.Context, id string, dto models.VacanteHabilidadDTO) (*models.VacanteHabilidad, error) {
	body := internalhelpers.NewBody().Set("habilidadId", dto.HabilidadId)
	internalhelpers.SetIfNotNil(body, "nivelRequerido", dto.NivelRequerido)

	var out models.VacanteHabilidad
	if err := s.api.Do(ctx, http.MethodPost, path(vacantesPath, id)+"/habilidades", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VacantesService) RemoveHabilidad(ctx context.Context, id, habilidadID string) error {
	return s.api.Do(ctx, http.MethodDelete, path(path(vacantesPath, id)+"/habilidades", habilidadID), nil, nil, nil)
}

func (s *VacantesService) AddIdioma(ctx context.Context, id string, dto models.VacanteIdiomaDTO) (*models.VacanteIdioma, error) {
	body := internalhelpers.NewBody().Set("idiomaId", dto.IdiomaId)
	internalhelpers.SetIfNotNil(body, "nivel", dto.Nivel)

	var out models.VacanteIdioma
	if err := s.api.Do(ctx, http.MethodPost, path(vacantesPath, id)+"/idiomas", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *VacantesService) RemoveIdioma(ctx context.Context, id, idiomaID string) error {
	return s.api.Do(ctx, http.MethodDelete, path(path(vacantesPath, id)+"/idiomas", idiomaID), nil, nil, nil)
}

// ListModalidades trae el catálogo de modalidades de trabajo.
func (s *VacantesService) ListModalidades(ctx context.Context) ([]models.Modalidad, error) {
	out := []models.Modalidad{}
	if err := s.api.Do(ctx, http.MethodGet, vacantesPath+"/modalidades", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListHorarios trae el catálogo de horarios.
func (s *VacantesService) ListHorarios(ctx context.Context) ([]models.Horario, error) {
	out := []models.Horario{}
	if err := s.api.Do(ctx, http.MethodGet, vacantesPath+"/horarios", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
