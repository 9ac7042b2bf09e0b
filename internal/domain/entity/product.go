package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto digital vendible (curso, plantilla, ebook).
// IsFeatured no es exclusivo: varios productos pueden estar destacados a la vez.
type Product struct {
	ID           string
	ProductID    string // clave de negocio: [a-z0-9-]+
	Name         string
	Description  string
	Price        decimal.Decimal
	Includes     []string // qué incluye la compra, almacenado como JSONB
	DisplayOrder int
	IsFeatured   bool
	Status       string // active, inactive
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
