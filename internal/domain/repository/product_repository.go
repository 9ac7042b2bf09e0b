package repository

import "github.com/jhoicas/agencia-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// SetFeatured no es exclusivo: varios productos pueden estar destacados.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByProductID(productID string, includeInactive bool) (*entity.Product, error)
	List(f CatalogFilter) ([]*entity.Product, int, error)
	Update(product *entity.Product) error
	ChangeStatus(productID, status string) error
	SetFeatured(productID string, featured bool) error
	SetDisplayOrder(productID string, order int) error
	HardDelete(productID string) error
}
