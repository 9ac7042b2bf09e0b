package repository

import "github.com/jhoicas/agencia-api/internal/domain/entity"

// ServiceRepository define el puerto de persistencia para Service (DIP).
// GetByServiceID devuelve (nil, nil) cuando no existe; las operaciones de
// escritura devuelven domain.ErrNotFound cuando no afectan filas.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByServiceID(serviceID string, includeInactive bool) (*entity.Service, error)
	List(f CatalogFilter) ([]*entity.Service, int, error)
	Update(service *entity.Service) error
	ChangeStatus(serviceID, status string) error
	SetDisplayOrder(serviceID string, order int) error
	HardDelete(serviceID string) error
}
