package repository

import (
	"encoding/json"

	"github.com/jhoicas/agencia-api/internal/domain/entity"
)

// ContentRepository define el puerto de persistencia para ContentSection.
// Las secciones son un conjunto fijo: la escritura es upsert por section_key.
// UpdatePartial funde un único valor en la ruta indicada del documento sin
// tocar claves hermanas; la operación es una sola sentencia, por lo que dos
// actualizaciones concurrentes a rutas distintas sobreviven ambas.
type ContentRepository interface {
	Upsert(section *entity.ContentSection) error
	GetBySectionKey(sectionKey string, includeUnpublished bool) (*entity.ContentSection, error)
	List(includeUnpublished bool) ([]*entity.ContentSection, error)
	UpdatePartial(sectionKey string, path []string, value json.RawMessage, updatedBy string) error
	ChangeStatus(sectionKey, status string) error
	HardDelete(sectionKey string) error
}
