package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

const planColumns = `id, plan_id, name, description, price, currency, period, benefits, display_order, is_featured, status, created_by, created_at, updated_at`

// PlanRepo implementación de PlanRepository sobre PostgreSQL (usable con pool o tx).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

func scanPlan(row pgx.Row) (*entity.Plan, error) {
	var p entity.Plan
	var createdBy *string
	err := row.Scan(
		&p.ID, &p.PlanID, &p.Name, &p.Description, &p.Price, &p.Currency, &p.Period,
		&p.Benefits, &p.DisplayOrder, &p.IsFeatured, &p.Status, &createdBy,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		p.CreatedBy = *createdBy
	}
	return &p, nil
}

// Create persiste un nuevo plan. Benefits se almacena como JSONB.
func (r *PlanRepo) Create(plan *entity.Plan) error {
	query := `
		INSERT INTO plans (id, plan_id, name, description, price, currency, period, benefits, display_order, is_featured, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.PlanID, plan.Name, plan.Description, plan.Price, plan.Currency,
		plan.Period, plan.Benefits, plan.DisplayOrder, plan.IsFeatured, plan.Status,
		nullIfEmpty(plan.CreatedBy), plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// GetByPlanID obtiene un plan por su clave de negocio.
func (r *PlanRepo) GetByPlanID(planID string, includeInactive bool) (*entity.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE plan_id = $1`
	args := []any{planID}
	if !includeInactive {
		query += ` AND status = $2`
		args = append(args, entity.CatalogStatusActive)
	}
	p, err := scanPlan(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// List lista planes. Orden determinista: display_order y precio ascendente.
func (r *PlanRepo) List(f repository.CatalogFilter) ([]*entity.Plan, int, error) {
	f.Normalize()
	where, args := buildCatalogWhere(f, entity.CatalogStatusActive, true)

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM plans `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count plans: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM plans %s ORDER BY display_order ASC, price ASC LIMIT $%d OFFSET $%d`,
		planColumns, where, len(args)+1, len(args)+2)
	rows, err := r.q.Query(context.Background(), query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var list []*entity.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update actualiza un plan existente por clave de negocio. is_featured no se
// toca aquí: solo vía SetFeatured para respetar la exclusividad.
func (r *PlanRepo) Update(plan *entity.Plan) error {
	query := `
		UPDATE plans SET name = $2, description = $3, price = $4, currency = $5, period = $6, benefits = $7, display_order = $8, updated_at = $9
		WHERE plan_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		plan.PlanID, plan.Name, plan.Description, plan.Price, plan.Currency,
		plan.Period, plan.Benefits, plan.DisplayOrder, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ChangeStatus cambia el estado del plan.
func (r *PlanRepo) ChangeStatus(planID, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE plans SET status = $2, updated_at = now() WHERE plan_id = $1`,
		planID, status,
	)
	if err != nil {
		return fmt.Errorf("change plan status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetFeatured marca o desmarca el plan destacado. Cuando se marca, debe
// ejecutarse junto con ClearFeatured dentro de una transacción (TxRunner)
// para que nunca haya dos planes destacados a la vez.
func (r *PlanRepo) SetFeatured(planID string, featured bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE plans SET is_featured = $2, updated_at = now() WHERE plan_id = $1`,
		planID, featured,
	)
	if err != nil {
		return fmt.Errorf("set plan featured: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClearFeatured desmarca todos los planes destacados.
func (r *PlanRepo) ClearFeatured() error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE plans SET is_featured = FALSE, updated_at = now() WHERE is_featured = TRUE`)
	if err != nil {
		return fmt.Errorf("clear featured plans: %w", err)
	}
	return nil
}

// SetDisplayOrder fija la posición del plan. Usado dentro de la transacción de reorder.
func (r *PlanRepo) SetDisplayOrder(planID string, order int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE plans SET display_order = $2, updated_at = now() WHERE plan_id = $1`,
		planID, order,
	)
	if err != nil {
		return fmt.Errorf("set plan order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HardDelete elimina definitivamente un plan. Irreversible.
func (r *PlanRepo) HardDelete(planID string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM plans WHERE plan_id = $1`, planID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
