package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePlanRequest entrada para crear un plan.
type CreatePlanRequest struct {
	PlanID      string          `json:"plan_id" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Period      string          `json:"period"`
	Benefits    []string        `json:"benefits"`
	Order       int             `json:"order"`
}

// UpdatePlanRequest actualización parcial de un plan. is_featured no se
// actualiza por aquí: tiene su propia operación con exclusividad transaccional.
type UpdatePlanRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Currency    *string          `json:"currency"`
	Period      *string          `json:"period"`
	Benefits    []string         `json:"benefits"`
	Order       *int             `json:"order"`
}

// Empty indica si la intersección con los campos permitidos quedó vacía.
func (r UpdatePlanRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil &&
		r.Currency == nil && r.Period == nil && r.Benefits == nil && r.Order == nil
}

// PlanResponse salida de un plan.
type PlanResponse struct {
	ID          string          `json:"id"`
	PlanID      string          `json:"plan_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Period      string          `json:"period"`
	Benefits    []string        `json:"benefits"`
	Order       int             `json:"order"`
	IsFeatured  bool            `json:"is_featured"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PlanReorderItem par plan_id/order del body de reorder.
type PlanReorderItem struct {
	PlanID string `json:"plan_id" validate:"required"`
	Order  int    `json:"order"`
}

// PlanReorderRequest lote de reordenamiento; se aplica completo o no se
// aplica.
type PlanReorderRequest struct {
	Order []PlanReorderItem `json:"order" validate:"required,min=1"`
}

// Items traduce el body al par genérico de los casos de uso.
func (r PlanReorderRequest) Items() []ReorderItem {
	items := make([]ReorderItem, 0, len(r.Order))
	for _, it := range r.Order {
		items = append(items, ReorderItem{BusinessID: it.PlanID, Order: it.Order})
	}
	return items
}
