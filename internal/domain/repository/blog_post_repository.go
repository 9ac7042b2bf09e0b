package repository

import "github.com/jhoicas/agencia-api/internal/domain/entity"

// BlogPostRepository define el puerto de persistencia para BlogPost
// (episodios del podcast). SetFeatured no es exclusivo.
type BlogPostRepository interface {
	Create(post *entity.BlogPost) error
	GetBySlug(slug string, includeUnpublished bool) (*entity.BlogPost, error)
	List(f CatalogFilter) ([]*entity.BlogPost, int, error)
	Update(post *entity.BlogPost) error
	ChangeStatus(slug, status string) error
	SetFeatured(slug string, featured bool) error
	SetDisplayOrder(slug string, order int) error
	HardDelete(slug string) error
}
