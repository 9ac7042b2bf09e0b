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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceColumns = `id, service_id, title, description, icon, features, price, display_order, status, created_by, created_at, updated_at`

// ServiceRepo implementación de ServiceRepository sobre PostgreSQL (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	var createdBy *string
	err := row.Scan(
		&s.ID, &s.ServiceID, &s.Title, &s.Description, &s.Icon, &s.Features,
		&s.Price, &s.DisplayOrder, &s.Status, &createdBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		s.CreatedBy = *createdBy
	}
	return &s, nil
}

// Create persiste un nuevo servicio. Features se almacena como JSONB.
func (r *ServiceRepo) Create(service *entity.Service) error {
	query := `
		INSERT INTO services (id, service_id, title, description, icon, features, price, display_order, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.ServiceID, service.Title, service.Description, service.Icon,
		service.Features, service.Price, service.DisplayOrder, service.Status,
		nullIfEmpty(service.CreatedBy), service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByServiceID obtiene un servicio por su clave de negocio. Por convención
// solo las filas activas son visibles, salvo que includeInactive sea true.
func (r *ServiceRepo) GetByServiceID(serviceID string, includeInactive bool) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE service_id = $1`
	args := []any{serviceID}
	if !includeInactive {
		query += ` AND status = $2`
		args = append(args, entity.CatalogStatusActive)
	}
	s, err := scanService(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

// List lista servicios con filtros permitidos y paginación. Devuelve la
// página y el total calculado con un COUNT espejo del mismo predicado.
func (r *ServiceRepo) List(f repository.CatalogFilter) ([]*entity.Service, int, error) {
	f.Normalize()
	where, args := buildCatalogWhere(f, entity.CatalogStatusActive, false)

	var total int
	countQuery := `SELECT COUNT(*) FROM services ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM services %s ORDER BY display_order ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		serviceColumns, where, len(args)+1, len(args)+2)
	rows, err := r.q.Query(context.Background(), query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var list []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// Update actualiza un servicio existente por clave de negocio y estampa updated_at.
func (r *ServiceRepo) Update(service *entity.Service) error {
	query := `
		UPDATE services SET title = $2, description = $3, icon = $4, features = $5, price = $6, display_order = $7, updated_at = $8
		WHERE service_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		service.ServiceID, service.Title, service.Description, service.Icon,
		service.Features, service.Price, service.DisplayOrder, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ChangeStatus cambia el estado del servicio. El valor ya viene validado
// contra el enum en la capa de aplicación.
func (r *ServiceRepo) ChangeStatus(serviceID, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE services SET status = $2, updated_at = now() WHERE service_id = $1`,
		serviceID, status,
	)
	if err != nil {
		return fmt.Errorf("change service status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetDisplayOrder fija la posición del servicio. Usado dentro de la
// transacción de reorder.
func (r *ServiceRepo) SetDisplayOrder(serviceID string, order int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE services SET display_order = $2, updated_at = now() WHERE service_id = $1`,
		serviceID, order,
	)
	if err != nil {
		return fmt.Errorf("set service order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HardDelete elimina definitivamente un servicio. Irreversible.
func (r *ServiceRepo) HardDelete(serviceID string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE service_id = $1`, serviceID)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
