package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan representa un plan de suscripción publicado en la página de precios.
// A lo sumo un Plan puede tener IsFeatured=true a la vez; esa exclusividad se
// garantiza con una transacción en la capa de persistencia.
type Plan struct {
	ID           string
	PlanID       string // clave de negocio: [a-z0-9-]+
	Name         string
	Description  string
	Price        decimal.Decimal
	Currency     string
	Period       string // monthly, yearly, one-time
	Benefits     []string
	DisplayOrder int
	IsFeatured   bool
	Status       string // active, inactive
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
