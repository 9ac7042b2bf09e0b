package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de los recursos de catálogo (Service, Plan, Product).
const (
	CatalogStatusActive   = "active"
	CatalogStatusInactive = "inactive"
)

// CatalogStatuses lista los estados permitidos (para mensajes de validación).
var CatalogStatuses = []string{CatalogStatusActive, CatalogStatusInactive}

// Service representa un servicio ofrecido por la agencia (SEO, pauta, etc.).
// ServiceID es la clave de negocio estable (slug), distinta del id interno.
type Service struct {
	ID           string
	ServiceID    string // clave de negocio: [a-z0-9-]+
	Title        string
	Description  string
	Icon         string
	Features     []string // almacenado como JSONB
	Price        decimal.Decimal
	DisplayOrder int
	Status       string // active, inactive
	CreatedBy    string // user id, referencia débil
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidCatalogStatus indica si status pertenece al conjunto permitido.
func ValidCatalogStatus(status string) bool {
	return status == CatalogStatusActive || status == CatalogStatusInactive
}
