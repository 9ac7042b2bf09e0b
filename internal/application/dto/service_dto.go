package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest entrada para crear un servicio.
type CreateServiceRequest struct {
	ServiceID   string          `json:"service_id" validate:"required,min=1,max=100"`
	Title       string          `json:"title" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Features    []string        `json:"features"`
	Price       decimal.Decimal `json:"price"`
	Order       int             `json:"order"`
}

// UpdateServiceRequest actualización parcial: solo los campos presentes se
// aplican; cualquier clave desconocida del body simplemente se ignora.
type UpdateServiceRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Icon        *string          `json:"icon"`
	Features    []string         `json:"features"`
	Price       *decimal.Decimal `json:"price"`
	Order       *int             `json:"order"`
}

// Empty indica si la intersección con los campos permitidos quedó vacía.
func (r UpdateServiceRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Icon == nil &&
		r.Features == nil && r.Price == nil && r.Order == nil
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID          string          `json:"id"`
	ServiceID   string          `json:"service_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Features    []string        `json:"features"`
	Price       decimal.Decimal `json:"price"`
	Order       int             `json:"order"`
	Status      string          `json:"status"`
	CreatedBy   string          `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ChangeStatusRequest cambio de estado de un recurso de catálogo.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SetFeaturedRequest marca o desmarca un recurso como destacado.
type SetFeaturedRequest struct {
	Featured *bool `json:"featured" validate:"required"`
}

// ReorderItem par (clave de negocio, posición) que consumen los casos de
// uso. Cada recurso expone su propio request de reorder con el nombre de
// campo que le corresponde en el wire.
type ReorderItem struct {
	BusinessID string
	Order      int
}

// ServiceReorderItem par service_id/order del body de reorder.
type ServiceReorderItem struct {
	ServiceID string `json:"service_id" validate:"required"`
	Order     int    `json:"order"`
}

// ServiceReorderRequest lote de reordenamiento; se aplica completo o no se
// aplica.
type ServiceReorderRequest struct {
	Order []ServiceReorderItem `json:"order" validate:"required,min=1"`
}

// Items traduce el body al par genérico de los casos de uso.
func (r ServiceReorderRequest) Items() []ReorderItem {
	items := make([]ReorderItem, 0, len(r.Order))
	for _, it := range r.Order {
		items = append(items, ReorderItem{BusinessID: it.ServiceID, Order: it.Order})
	}
	return items
}
