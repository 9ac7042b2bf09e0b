package repository

import "github.com/jhoicas/agencia-api/internal/domain/entity"

// PlanRepository define el puerto de persistencia para Plan (DIP).
// ClearFeatured y SetFeatured se usan juntos dentro de una transacción para
// garantizar que a lo sumo un plan quede destacado.
type PlanRepository interface {
	Create(plan *entity.Plan) error
	GetByPlanID(planID string, includeInactive bool) (*entity.Plan, error)
	List(f CatalogFilter) ([]*entity.Plan, int, error)
	Update(plan *entity.Plan) error
	ChangeStatus(planID, status string) error
	SetFeatured(planID string, featured bool) error
	ClearFeatured() error
	SetDisplayOrder(planID string, order int) error
	HardDelete(planID string) error
}
