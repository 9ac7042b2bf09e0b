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

// ProductUseCase casos de uso CRUD para productos digitales.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner CatalogTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner CatalogTxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto nuevo.
func (uc *ProductUseCase) Create(createdBy string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !ValidBusinessKey(in.ProductID) {
		return nil, fmt.Errorf("%w: product_id debe cumplir [a-z0-9-]+", domain.ErrInvalidInput)
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Includes:     in.Includes,
		DisplayOrder: in.Order,
		Status:       entity.CatalogStatusActive,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if product.Includes == nil {
		product.Includes = []string{}
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByProductID obtiene un producto por clave de negocio.
func (uc *ProductUseCase) GetByProductID(productID string, includeInactive bool) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByProductID(productID, includeInactive)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(f repository.CatalogFilter) ([]dto.ProductResponse, *dto.Pagination, error) {
	f.Normalize()
	list, total, err := uc.repo.List(f)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, dto.NewPagination(f.Page, f.Limit, total), nil
}

// Update aplica una actualización parcial.
func (uc *ProductUseCase) Update(productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: ningún campo actualizable presente", domain.ErrInvalidInput)
	}
	product, err := uc.repo.GetByProductID(productID, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Includes != nil {
		product.Includes = in.Includes
	}
	if in.Order != nil {
		product.DisplayOrder = *in.Order
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SetFeatured marca o desmarca un producto; a diferencia de los planes,
// varios productos destacados pueden coexistir.
func (uc *ProductUseCase) SetFeatured(productID string, featured bool) error {
	return uc.repo.SetFeatured(productID, featured)
}

// ChangeStatus valida el nuevo estado contra el enum antes de escribir.
func (uc *ProductUseCase) ChangeStatus(productID, status string) error {
	if !entity.ValidCatalogStatus(status) {
		return fmt.Errorf("%w: estado %q no permitido; valores: %s",
			domain.ErrInvalidInput, status, strings.Join(entity.CatalogStatuses, ", "))
	}
	return uc.repo.ChangeStatus(productID, status)
}

// Reorder aplica el lote de posiciones dentro de una transacción.
func (uc *ProductUseCase) Reorder(ctx context.Context, items []dto.ReorderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: lote de reorder vacío", domain.ErrInvalidInput)
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.ServiceRepository,
		_ repository.PlanRepository,
		productRepo repository.ProductRepository,
		_ repository.BlogPostRepository,
	) error {
		for _, it := range items {
			if err := productRepo.SetDisplayOrder(it.BusinessID, it.Order); err != nil {
				return fmt.Errorf("reorder %q: %w", it.BusinessID, err)
			}
		}
		return nil
	})
}

// SoftDelete flip de estado a inactive.
func (uc *ProductUseCase) SoftDelete(productID string) error {
	return uc.repo.ChangeStatus(productID, entity.CatalogStatusInactive)
}

// HardDelete elimina definitivamente. Solo rutas admin llegan aquí.
func (uc *ProductUseCase) HardDelete(productID string) error {
	return uc.repo.HardDelete(productID)
}

// ImportLegacy inserta registros del volcado legacy con upsert por clave.
func (uc *ProductUseCase) ImportLegacy(createdBy string, records []dto.CreateProductRequest) (inserted, updated int, err error) {
	for _, rec := range records {
		_, err := uc.Create(createdBy, rec)
		if err == nil {
			inserted++
			continue
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return inserted, updated, fmt.Errorf("importar producto %q: %w", rec.ProductID, err)
		}
		up := dto.UpdateProductRequest{
			Name:        &rec.Name,
			Description: &rec.Description,
			Price:       &rec.Price,
			Includes:    rec.Includes,
			Order:       &rec.Order,
		}
		if _, err := uc.Update(rec.ProductID, up); err != nil {
			return inserted, updated, fmt.Errorf("actualizar producto %q: %w", rec.ProductID, err)
		}
		updated++
	}
	return inserted, updated, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Includes:    p.Includes,
		Order:       p.DisplayOrder,
		IsFeatured:  p.IsFeatured,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
