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

// PlanUseCase casos de uso CRUD para planes de precios, incluida la marca
// exclusiva de plan destacado.
type PlanUseCase struct {
	repo     repository.PlanRepository
	txRunner CatalogTxRunner
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(repo repository.PlanRepository, txRunner CatalogTxRunner) *PlanUseCase {
	return &PlanUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un plan nuevo. Los planes nacen sin destacar.
func (uc *PlanUseCase) Create(createdBy string, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if !ValidBusinessKey(in.PlanID) {
		return nil, fmt.Errorf("%w: plan_id debe cumplir [a-z0-9-]+", domain.ErrInvalidInput)
	}
	now := time.Now()
	plan := &entity.Plan{
		ID:           uuid.New().String(),
		PlanID:       in.PlanID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Currency:     in.Currency,
		Period:       in.Period,
		Benefits:     in.Benefits,
		DisplayOrder: in.Order,
		IsFeatured:   false,
		Status:       entity.CatalogStatusActive,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if plan.Currency == "" {
		plan.Currency = "USD"
	}
	if plan.Period == "" {
		plan.Period = "monthly"
	}
	if plan.Benefits == nil {
		plan.Benefits = []string{}
	}
	if err := uc.repo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// GetByPlanID obtiene un plan por clave de negocio.
func (uc *PlanUseCase) GetByPlanID(planID string, includeInactive bool) (*dto.PlanResponse, error) {
	plan, err := uc.repo.GetByPlanID(planID, includeInactive)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}
	return toPlanResponse(plan), nil
}

// List lista planes con filtros y paginación.
func (uc *PlanUseCase) List(f repository.CatalogFilter) ([]dto.PlanResponse, *dto.Pagination, error) {
	f.Normalize()
	list, total, err := uc.repo.List(f)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.PlanResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPlanResponse(p))
	}
	return items, dto.NewPagination(f.Page, f.Limit, total), nil
}

// Update aplica una actualización parcial; no toca is_featured.
func (uc *PlanUseCase) Update(planID string, in dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: ningún campo actualizable presente", domain.ErrInvalidInput)
	}
	plan, err := uc.repo.GetByPlanID(planID, true)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}
	if in.Name != nil {
		plan.Name = *in.Name
	}
	if in.Description != nil {
		plan.Description = *in.Description
	}
	if in.Price != nil {
		plan.Price = *in.Price
	}
	if in.Currency != nil {
		plan.Currency = *in.Currency
	}
	if in.Period != nil {
		plan.Period = *in.Period
	}
	if in.Benefits != nil {
		plan.Benefits = in.Benefits
	}
	if in.Order != nil {
		plan.DisplayOrder = *in.Order
	}
	plan.UpdatedAt = time.Now()
	if err := uc.repo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// SetFeatured marca o desmarca un plan como destacado. Marcar ejecuta el
// desmarque global y la marca nueva en la misma transacción; nunca quedan dos
// planes destacados visibles, ni siquiera entre llamadas concurrentes.
func (uc *PlanUseCase) SetFeatured(ctx context.Context, planID string, featured bool) error {
	if !featured {
		return uc.repo.SetFeatured(planID, false)
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.ServiceRepository,
		planRepo repository.PlanRepository,
		_ repository.ProductRepository,
		_ repository.BlogPostRepository,
	) error {
		if err := planRepo.ClearFeatured(); err != nil {
			return err
		}
		return planRepo.SetFeatured(planID, true)
	})
}

// ChangeStatus valida el nuevo estado contra el enum antes de escribir.
func (uc *PlanUseCase) ChangeStatus(planID, status string) error {
	if !entity.ValidCatalogStatus(status) {
		return fmt.Errorf("%w: estado %q no permitido; valores: %s",
			domain.ErrInvalidInput, status, strings.Join(entity.CatalogStatuses, ", "))
	}
	return uc.repo.ChangeStatus(planID, status)
}

// Reorder aplica el lote de posiciones dentro de una transacción.
func (uc *PlanUseCase) Reorder(ctx context.Context, items []dto.ReorderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: lote de reorder vacío", domain.ErrInvalidInput)
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.ServiceRepository,
		planRepo repository.PlanRepository,
		_ repository.ProductRepository,
		_ repository.BlogPostRepository,
	) error {
		for _, it := range items {
			if err := planRepo.SetDisplayOrder(it.BusinessID, it.Order); err != nil {
				return fmt.Errorf("reorder %q: %w", it.BusinessID, err)
			}
		}
		return nil
	})
}

// SoftDelete flip de estado a inactive.
func (uc *PlanUseCase) SoftDelete(planID string) error {
	return uc.repo.ChangeStatus(planID, entity.CatalogStatusInactive)
}

// HardDelete elimina definitivamente. Solo rutas admin llegan aquí.
func (uc *PlanUseCase) HardDelete(planID string) error {
	return uc.repo.HardDelete(planID)
}

// ImportLegacy inserta registros del volcado legacy con upsert por clave.
func (uc *PlanUseCase) ImportLegacy(createdBy string, records []dto.CreatePlanRequest) (inserted, updated int, err error) {
	for _, rec := range records {
		_, err := uc.Create(createdBy, rec)
		if err == nil {
			inserted++
			continue
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return inserted, updated, fmt.Errorf("importar plan %q: %w", rec.PlanID, err)
		}
		up := dto.UpdatePlanRequest{
			Name:        &rec.Name,
			Description: &rec.Description,
			Price:       &rec.Price,
			Currency:    &rec.Currency,
			Period:      &rec.Period,
			Benefits:    rec.Benefits,
			Order:       &rec.Order,
		}
		if _, err := uc.Update(rec.PlanID, up); err != nil {
			return inserted, updated, fmt.Errorf("actualizar plan %q: %w", rec.PlanID, err)
		}
		updated++
	}
	return inserted, updated, nil
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		ID:          p.ID,
		PlanID:      p.PlanID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Period:      p.Period,
		Benefits:    p.Benefits,
		Order:       p.DisplayOrder,
		IsFeatured:  p.IsFeatured,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
