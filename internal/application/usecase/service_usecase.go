package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para servicios del catálogo.
type ServiceUseCase struct {
	repo     repository.ServiceRepository
	txRunner CatalogTxRunner
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository, txRunner CatalogTxRunner) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un nuevo servicio. La clave de negocio debe cumplir [a-z0-9-]+.
func (uc *ServiceUseCase) Create(createdBy string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if !ValidBusinessKey(in.ServiceID) {
		return nil, fmt.Errorf("%w: service_id debe cumplir [a-z0-9-]+", domain.ErrInvalidInput)
	}
	now := time.Now()
	service := &entity.Service{
		ID:           uuid.New().String(),
		ServiceID:    in.ServiceID,
		Title:        in.Title,
		Description:  in.Description,
		Icon:         in.Icon,
		Features:     in.Features,
		Price:        in.Price,
		DisplayOrder: in.Order,
		Status:       entity.CatalogStatusActive,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if service.Features == nil {
		service.Features = []string{}
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByServiceID obtiene un servicio por clave de negocio.
// includeInactive lo habilitan los editores autenticados.
func (uc *ServiceUseCase) GetByServiceID(serviceID string, includeInactive bool) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByServiceID(serviceID, includeInactive)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	return toServiceResponse(service), nil
}

// List lista servicios con filtros y paginación.
func (uc *ServiceUseCase) List(f repository.CatalogFilter) ([]dto.ServiceResponse, *dto.Pagination, error) {
	f.Normalize()
	list, total, err := uc.repo.List(f)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceResponse(s))
	}
	return items, dto.NewPagination(f.Page, f.Limit, total), nil
}

// Update aplica una actualización parcial. Si el body no trae ningún campo
// permitido, falla con ErrInvalidInput y el registro queda intacto.
func (uc *ServiceUseCase) Update(serviceID string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: ningún campo actualizable presente", domain.ErrInvalidInput)
	}
	service, err := uc.repo.GetByServiceID(serviceID, true)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	if in.Title != nil {
		service.Title = *in.Title
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Icon != nil {
		service.Icon = *in.Icon
	}
	if in.Features != nil {
		service.Features = in.Features
	}
	if in.Price != nil {
		service.Price = *in.Price
	}
	if in.Order != nil {
		service.DisplayOrder = *in.Order
	}
	service.UpdatedAt = time.Now()
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// ChangeStatus valida el nuevo estado contra el enum antes de escribir.
func (uc *ServiceUseCase) ChangeStatus(serviceID, status string) error {
	if !entity.ValidCatalogStatus(status) {
		return fmt.Errorf("%w: estado %q no permitido; valores: %s",
			domain.ErrInvalidInput, status, strings.Join(entity.CatalogStatuses, ", "))
	}
	return uc.repo.ChangeStatus(serviceID, status)
}

// Reorder aplica el lote de posiciones dentro de una transacción: o se
// aplican todos los pares o ninguno.
func (uc *ServiceUseCase) Reorder(ctx context.Context, items []dto.ReorderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: lote de reorder vacío", domain.ErrInvalidInput)
	}
	return uc.txRunner.Run(ctx, func(
		serviceRepo repository.ServiceRepository,
		_ repository.PlanRepository,
		_ repository.ProductRepository,
		_ repository.BlogPostRepository,
	) error {
		for _, it := range items {
			if err := serviceRepo.SetDisplayOrder(it.BusinessID, it.Order); err != nil {
				return fmt.Errorf("reorder %q: %w", it.BusinessID, err)
			}
		}
		return nil
	})
}

// SoftDelete flip de estado a inactive; reversible vía ChangeStatus.
func (uc *ServiceUseCase) SoftDelete(serviceID string) error {
	return uc.repo.ChangeStatus(serviceID, entity.CatalogStatusInactive)
}

// HardDelete elimina definitivamente. Solo rutas admin llegan aquí.
func (uc *ServiceUseCase) HardDelete(serviceID string) error {
	return uc.repo.HardDelete(serviceID)
}

// ImportLegacy inserta registros del volcado legacy; si la clave ya existe,
// actualiza en su lugar. Cualquier otro error aborta el lote.
func (uc *ServiceUseCase) ImportLegacy(createdBy string, records []dto.CreateServiceRequest) (inserted, updated int, err error) {
	for _, rec := range records {
		_, err := uc.Create(createdBy, rec)
		if err == nil {
			inserted++
			continue
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return inserted, updated, fmt.Errorf("importar servicio %q: %w", rec.ServiceID, err)
		}
		up := dto.UpdateServiceRequest{
			Title:       &rec.Title,
			Description: &rec.Description,
			Icon:        &rec.Icon,
			Features:    rec.Features,
			Price:       &rec.Price,
			Order:       &rec.Order,
		}
		if _, err := uc.Update(rec.ServiceID, up); err != nil {
			return inserted, updated, fmt.Errorf("actualizar servicio %q: %w", rec.ServiceID, err)
		}
		updated++
	}
	return inserted, updated, nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          s.ID,
		ServiceID:   s.ServiceID,
		Title:       s.Title,
		Description: s.Description,
		Icon:        s.Icon,
		Features:    s.Features,
		Price:       s.Price,
		Order:       s.DisplayOrder,
		Status:      s.Status,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
