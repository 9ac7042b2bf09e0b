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

// BlogPostUseCase casos de uso para los episodios del podcast. Los episodios
// nacen en draft y solo los publicados son visibles sin autenticación.
type BlogPostUseCase struct {
	repo     repository.BlogPostRepository
	txRunner CatalogTxRunner
}

// NewBlogPostUseCase construye el caso de uso.
func NewBlogPostUseCase(repo repository.BlogPostRepository, txRunner CatalogTxRunner) *BlogPostUseCase {
	return &BlogPostUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un episodio en estado draft, firmado por el autor autenticado.
func (uc *BlogPostUseCase) Create(authorID string, in dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	if !ValidBusinessKey(in.Slug) {
		return nil, fmt.Errorf("%w: slug debe cumplir [a-z0-9-]+", domain.ErrInvalidInput)
	}
	now := time.Now()
	post := &entity.BlogPost{
		ID:            uuid.New().String(),
		Slug:          in.Slug,
		Title:         in.Title,
		Description:   in.Description,
		AudioURL:      in.AudioURL,
		EpisodeNumber: in.EpisodeNumber,
		Duration:      in.Duration,
		Topics:        in.Topics,
		AuthorID:      authorID,
		DisplayOrder:  in.Order,
		Status:        entity.PostStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if post.Topics == nil {
		post.Topics = []string{}
	}
	if err := uc.repo.Create(post); err != nil {
		return nil, err
	}
	return toBlogPostResponse(post), nil
}

// GetBySlug obtiene un episodio. includeUnpublished lo habilitan los editores.
func (uc *BlogPostUseCase) GetBySlug(slug string, includeUnpublished bool) (*dto.BlogPostResponse, error) {
	post, err := uc.repo.GetBySlug(slug, includeUnpublished)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	return toBlogPostResponse(post), nil
}

// List lista episodios con filtros y paginación.
func (uc *BlogPostUseCase) List(f repository.CatalogFilter) ([]dto.BlogPostResponse, *dto.Pagination, error) {
	f.Normalize()
	list, total, err := uc.repo.List(f)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.BlogPostResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toBlogPostResponse(p))
	}
	return items, dto.NewPagination(f.Page, f.Limit, total), nil
}

// Update aplica una actualización parcial; el slug y el autor no cambian.
func (uc *BlogPostUseCase) Update(slug string, in dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: ningún campo actualizable presente", domain.ErrInvalidInput)
	}
	post, err := uc.repo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Description != nil {
		post.Description = *in.Description
	}
	if in.AudioURL != nil {
		post.AudioURL = *in.AudioURL
	}
	if in.EpisodeNumber != nil {
		post.EpisodeNumber = *in.EpisodeNumber
	}
	if in.Duration != nil {
		post.Duration = *in.Duration
	}
	if in.Topics != nil {
		post.Topics = in.Topics
	}
	if in.Order != nil {
		post.DisplayOrder = *in.Order
	}
	post.UpdatedAt = time.Now()
	if err := uc.repo.Update(post); err != nil {
		return nil, err
	}
	return toBlogPostResponse(post), nil
}

// ChangeStatus transiciona draft/published/archived. Pasar a published fija
// published_at la primera vez; republicar conserva la fecha original.
func (uc *BlogPostUseCase) ChangeStatus(slug, status string) error {
	if !entity.ValidPostStatus(status) {
		return fmt.Errorf("%w: estado %q no permitido; valores: %s",
			domain.ErrInvalidInput, status, strings.Join(entity.PostStatuses, ", "))
	}
	return uc.repo.ChangeStatus(slug, status)
}

// SetFeatured marca o desmarca un episodio; varios pueden estar destacados.
func (uc *BlogPostUseCase) SetFeatured(slug string, featured bool) error {
	return uc.repo.SetFeatured(slug, featured)
}

// Reorder aplica el lote de posiciones dentro de una transacción.
func (uc *BlogPostUseCase) Reorder(ctx context.Context, items []dto.ReorderItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: lote de reorder vacío", domain.ErrInvalidInput)
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.ServiceRepository,
		_ repository.PlanRepository,
		_ repository.ProductRepository,
		postRepo repository.BlogPostRepository,
	) error {
		for _, it := range items {
			if err := postRepo.SetDisplayOrder(it.BusinessID, it.Order); err != nil {
				return fmt.Errorf("reorder %q: %w", it.BusinessID, err)
			}
		}
		return nil
	})
}

// SoftDelete archiva el episodio; reversible vía ChangeStatus.
func (uc *BlogPostUseCase) SoftDelete(slug string) error {
	return uc.repo.ChangeStatus(slug, entity.PostStatusArchived)
}

// HardDelete elimina definitivamente. Solo rutas admin llegan aquí.
func (uc *BlogPostUseCase) HardDelete(slug string) error {
	return uc.repo.HardDelete(slug)
}

// ImportLegacy inserta episodios del volcado legacy con upsert por slug.
// Los episodios importados quedan publicados de inmediato, como en el sitio
// original.
func (uc *BlogPostUseCase) ImportLegacy(authorID string, records []dto.CreateBlogPostRequest) (inserted, updated int, err error) {
	for _, rec := range records {
		_, createErr := uc.Create(authorID, rec)
		switch {
		case createErr == nil:
			if err := uc.repo.ChangeStatus(rec.Slug, entity.PostStatusPublished); err != nil {
				return inserted, updated, fmt.Errorf("publicar episodio %q: %w", rec.Slug, err)
			}
			inserted++
		case errors.Is(createErr, domain.ErrDuplicate):
			up := dto.UpdateBlogPostRequest{
				Title:         &rec.Title,
				Description:   &rec.Description,
				AudioURL:      &rec.AudioURL,
				EpisodeNumber: &rec.EpisodeNumber,
				Duration:      &rec.Duration,
				Topics:        rec.Topics,
				Order:         &rec.Order,
			}
			if _, err := uc.Update(rec.Slug, up); err != nil {
				return inserted, updated, fmt.Errorf("actualizar episodio %q: %w", rec.Slug, err)
			}
			updated++
		default:
			return inserted, updated, fmt.Errorf("importar episodio %q: %w", rec.Slug, createErr)
		}
	}
	return inserted, updated, nil
}

func toBlogPostResponse(p *entity.BlogPost) *dto.BlogPostResponse {
	if p == nil {
		return nil
	}
	return &dto.BlogPostResponse{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		Description:   p.Description,
		AudioURL:      p.AudioURL,
		EpisodeNumber: p.EpisodeNumber,
		Duration:      p.Duration,
		Topics:        p.Topics,
		AuthorID:      p.AuthorID,
		Order:         p.DisplayOrder,
		IsFeatured:    p.IsFeatured,
		Status:        p.Status,
		PublishedAt:   p.PublishedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
