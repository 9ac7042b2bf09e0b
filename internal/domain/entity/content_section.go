package entity

import (
	"encoding/json"
	"time"
)

// Claves de sección conocidas del sitio. El conjunto es fijo: las escrituras
// son upsert por section_key, no hay creación libre de secciones.
const (
	SectionInicio    = "inicio"
	SectionNosotros  = "nosotros"
	SectionContacto  = "contacto"
	SectionFooter    = "footer"
	SectionFundacion = "fundacion"
)

// Estados de publicación de una sección de contenido.
const (
	ContentStatusDraft     = "draft"
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"
)

// ContentStatuses lista los estados permitidos (para mensajes de validación).
var ContentStatuses = []string{ContentStatusDraft, ContentStatusPublished, ContentStatusArchived}

// ContentSection es una sección editable del sitio: un documento JSON
// arbitrario (ContentData) identificado por su section_key único.
type ContentSection struct {
	ID          string
	SectionKey  string
	Name        string
	ContentData json.RawMessage // documento JSON completo de la sección
	Status      string          // draft, published, archived
	UpdatedBy   string          // user id del último editor, vacío si desconocido
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidContentStatus indica si status pertenece al conjunto permitido.
func ValidContentStatus(status string) bool {
	for _, s := range ContentStatuses {
		if s == status {
			return true
		}
	}
	return false
}
