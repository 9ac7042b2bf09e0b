package dto

import (
	"encoding/json"
	"time"
)

// UpsertContentRequest escritura completa de una sección (insert-or-replace
// por section_key).
type UpsertContentRequest struct {
	Name        string          `json:"name"`
	ContentData json.RawMessage `json:"content_data" validate:"required"`
	Status      string          `json:"status"` // por defecto published
}

// PartialContentRequest actualización de un único valor anidado. Path usa
// notación de puntos, p.ej. "hero.titulo".
type PartialContentRequest struct {
	Path  string          `json:"path" validate:"required"`
	Value json.RawMessage `json:"value" validate:"required"`
}

// ContentResponse salida de una sección de contenido.
type ContentResponse struct {
	ID          string          `json:"id"`
	SectionKey  string          `json:"section_key"`
	Name        string          `json:"name"`
	ContentData json.RawMessage `json:"content_data"`
	Status      string          `json:"status"`
	UpdatedBy   string          `json:"updated_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
