package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto digital.
type CreateProductRequest struct {
	ProductID   string          `json:"product_id" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Includes    []string        `json:"includes"`
	Order       int             `json:"order"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Includes    []string         `json:"includes"`
	Order       *int             `json:"order"`
}

// Empty indica si la intersección con los campos permitidos quedó vacía.
func (r UpdateProductRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil &&
		r.Includes == nil && r.Order == nil
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Includes    []string        `json:"includes"`
	Order       int             `json:"order"`
	IsFeatured  bool            `json:"is_featured"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductReorderItem par product_id/order del body de reorder.
type ProductReorderItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Order     int    `json:"order"`
}

// ProductReorderRequest lote de reordenamiento; se aplica completo o no se
// aplica.
type ProductReorderRequest struct {
	Order []ProductReorderItem `json:"order" validate:"required,min=1"`
}

// Items traduce el body al par genérico de los casos de uso.
func (r ProductReorderRequest) Items() []ReorderItem {
	items := make([]ReorderItem, 0, len(r.Order))
	for _, it := range r.Order {
		items = append(items, ReorderItem{BusinessID: it.ProductID, Order: it.Order})
	}
	return items
}
