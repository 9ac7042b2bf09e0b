package repository

import "github.com/jhoicas/agencia-api/internal/domain/entity"

// LeadStats agregados del CRM para el panel: conteos por estado, por
// servicio de interés y por mes de creación (últimos 12 meses).
type LeadStats struct {
	Total       int
	PorEstado   []LeadCount
	PorServicio []LeadCount
	PorMes      []LeadCount
}

// LeadCount un grupo y su conteo. Para PorMes, Key es "YYYY-MM".
type LeadCount struct {
	Key   string
	Count int
}

// LeadRepository define el puerto de persistencia para Lead (DIP).
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	List(f LeadFilter) ([]*entity.Lead, int, error)
	Update(lead *entity.Lead) error
	UpdateEstado(id, estado string) error
	Assign(id, userID string) error
	HardDelete(id string) error
	Estadisticas() (*LeadStats, error)
}
