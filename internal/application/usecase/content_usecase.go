package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// maxContentPathDepth limita la profundidad de una ruta parcial para
// acotar el tamaño de la sentencia generada.
const maxContentPathDepth = 10

// ContentUseCase casos de uso para las secciones editables del sitio.
type ContentUseCase struct {
	repo repository.ContentRepository
}

// NewContentUseCase construye el caso de uso.
func NewContentUseCase(repo repository.ContentRepository) *ContentUseCase {
	return &ContentUseCase{repo: repo}
}

// Upsert escribe el documento completo de una sección: crea la fila si la
// clave no existe y la reemplaza si ya existe.
func (uc *ContentUseCase) Upsert(updatedBy, sectionKey string, in dto.UpsertContentRequest) (*dto.ContentResponse, error) {
	if !ValidBusinessKey(sectionKey) {
		return nil, fmt.Errorf("%w: section_key debe cumplir [a-z0-9-]+", domain.ErrInvalidInput)
	}
	if len(in.ContentData) == 0 || !json.Valid(in.ContentData) {
		return nil, fmt.Errorf("%w: content_data debe ser JSON válido", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.ContentStatusPublished
	}
	if !entity.ValidContentStatus(status) {
		return nil, fmt.Errorf("%w: estado %q no permitido; valores: %s",
			domain.ErrInvalidInput, status, strings.Join(entity.ContentStatuses, ", "))
	}
	now := time.Now()
	section := &entity.ContentSection{
		ID:          uuid.New().String(),
		SectionKey:  sectionKey,
		Name:        in.Name,
		ContentData: in.ContentData,
		Status:      status,
		UpdatedBy:   updatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Upsert(section); err != nil {
		return nil, err
	}
	return toContentResponse(section), nil
}

// GetBySectionKey obtiene una sección. includeUnpublished lo habilitan los
// editores autenticados.
func (uc *ContentUseCase) GetBySectionKey(sectionKey string, includeUnpublished bool) (*dto.ContentResponse, error) {
	section, err := uc.repo.GetBySectionKey(sectionKey, includeUnpublished)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, nil
	}
	return toContentResponse(section), nil
}

// List lista todas las secciones, publicadas o todas según el llamador.
func (uc *ContentUseCase) List(includeUnpublished bool) ([]dto.ContentResponse, error) {
	sections, err := uc.repo.List(includeUnpublished)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContentResponse, 0, len(sections))
	for _, s := range sections {
		items = append(items, *toContentResponse(s))
	}
	return items, nil
}

// UpdatePartial funde un único valor en la ruta indicada del documento.
// La ruta usa notación de puntos ("hero.titulo"); los objetos intermedios
// que falten se crean, y las claves hermanas no se tocan.
func (uc *ContentUseCase) UpdatePartial(updatedBy, sectionKey string, in dto.PartialContentRequest) (*dto.ContentResponse, error) {
	path, err := ParseContentPath(in.Path)
	if err != nil {
		return nil, err
	}
	if len(in.Value) == 0 || !json.Valid(in.Value) {
		return nil, fmt.Errorf("%w: value debe ser JSON válido", domain.ErrInvalidInput)
	}
	if err := uc.repo.UpdatePartial(sectionKey, path, in.Value, updatedBy); err != nil {
		return nil, err
	}
	return uc.GetBySectionKey(sectionKey, true)
}

// ChangeStatus transiciona draft/published/archived.
func (uc *ContentUseCase) ChangeStatus(sectionKey, status string) error {
	if !entity.ValidContentStatus(status) {
		return fmt.Errorf("%w: estado %q no permitido; valores: %s",
			domain.ErrInvalidInput, status, strings.Join(entity.ContentStatuses, ", "))
	}
	return uc.repo.ChangeStatus(sectionKey, status)
}

// SoftDelete archiva la sección; el documento sigue en la base.
func (uc *ContentUseCase) SoftDelete(sectionKey string) error {
	return uc.repo.ChangeStatus(sectionKey, entity.ContentStatusArchived)
}

// HardDelete elimina definitivamente. Solo rutas admin llegan aquí.
func (uc *ContentUseCase) HardDelete(sectionKey string) error {
	return uc.repo.HardDelete(sectionKey)
}

// ImportLegacy carga las secciones del volcado legacy; Upsert ya es
// idempotente por clave, así que reimportar es seguro.
func (uc *ContentUseCase) ImportLegacy(updatedBy string, sections map[string]dto.UpsertContentRequest) (written int, err error) {
	for key, in := range sections {
		if _, err := uc.Upsert(updatedBy, key, in); err != nil {
			return written, fmt.Errorf("importar sección %q: %w", key, err)
		}
		written++
	}
	return written, nil
}

// ParseContentPath valida y divide una ruta en notación de puntos. Los
// segmentos vacíos, la profundidad excesiva y los caracteres de control se
// rechazan antes de llegar a la base.
func ParseContentPath(raw string) ([]string, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: path vacío", domain.ErrInvalidInput)
	}
	segments := strings.Split(raw, ".")
	if len(segments) > maxContentPathDepth {
		return nil, fmt.Errorf("%w: path supera %d niveles", domain.ErrInvalidInput, maxContentPathDepth)
	}
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: path con segmento vacío", domain.ErrInvalidInput)
		}
		for _, r := range seg {
			if r < 0x20 || r == 0x7f {
				return nil, fmt.Errorf("%w: path con caracteres de control", domain.ErrInvalidInput)
			}
		}
	}
	return segments, nil
}

func toContentResponse(s *entity.ContentSection) *dto.ContentResponse {
	if s == nil {
		return nil
	}
	return &dto.ContentResponse{
		ID:          s.ID,
		SectionKey:  s.SectionKey,
		Name:        s.Name,
		ContentData: s.ContentData,
		Status:      s.Status,
		UpdatedBy:   s.UpdatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
