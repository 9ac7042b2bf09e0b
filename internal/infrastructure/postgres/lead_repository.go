package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
	"github.com/jhoicas/agencia-api/pkg/normalize"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

const leadColumns = `id, nombre, email, telefono, empresa, servicio_interes, mensaje, estado, assigned_to, notas, created_at, updated_at`

// LeadRepo implementación de LeadRepository sobre PostgreSQL.
// La columna search_text guarda el texto plegado (minúsculas, sin tildes)
// para que la búsqueda sea insensible a acentos sin extensiones de Postgres.
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

func scanLead(row pgx.Row) (*entity.Lead, error) {
	var l entity.Lead
	var assignedTo *string
	err := row.Scan(
		&l.ID, &l.Nombre, &l.Email, &l.Telefono, &l.Empresa, &l.ServicioInteres,
		&l.Mensaje, &l.Estado, &assignedTo, &l.Notas, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if assignedTo != nil {
		l.AssignedTo = *assignedTo
	}
	return &l, nil
}

func leadSearchText(l *entity.Lead) string {
	return normalize.Fold(strings.Join([]string{l.Nombre, l.Email, l.Empresa, l.ServicioInteres}, " "))
}

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, nombre, email, telefono, empresa, servicio_interes, mensaje, estado, assigned_to, notas, search_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Nombre, lead.Email, lead.Telefono, lead.Empresa, lead.ServicioInteres,
		lead.Mensaje, lead.Estado, nullIfEmpty(lead.AssignedTo), lead.Notas,
		leadSearchText(lead), lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por su id.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	l, err := scanLead(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

// buildLeadWhere construye el WHERE a partir del conjunto cerrado de filtros.
func buildLeadWhere(f repository.LeadFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Estado != "" {
		args = append(args, f.Estado)
		conds = append(conds, fmt.Sprintf("estado = $%d", len(args)))
	}
	if f.ServicioInteres != "" {
		args = append(args, f.ServicioInteres)
		conds = append(conds, fmt.Sprintf("servicio_interes = $%d", len(args)))
	}
	if f.AssignedTo != "" {
		args = append(args, f.AssignedTo)
		conds = append(conds, fmt.Sprintf("assigned_to = $%d", len(args)))
	}
	if f.Query != "" {
		args = append(args, "%"+normalize.Fold(f.Query)+"%")
		conds = append(conds, fmt.Sprintf("search_text LIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// List lista leads con filtros y paginación; total con COUNT espejo.
func (r *LeadRepo) List(f repository.LeadFilter) ([]*entity.Lead, int, error) {
	f.Normalize()
	where, args := buildLeadWhere(f)

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM leads `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM leads %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		leadColumns, where, len(args)+1, len(args)+2)
	rows, err := r.q.Query(context.Background(), query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, l)
	}
	return list, total, rows.Err()
}

// Update actualiza los campos editables del lead y regenera search_text.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	query := `
		UPDATE leads SET nombre = $2, email = $3, telefono = $4, empresa = $5, servicio_interes = $6, mensaje = $7, notas = $8, search_text = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Nombre, lead.Email, lead.Telefono, lead.Empresa, lead.ServicioInteres,
		lead.Mensaje, lead.Notas, leadSearchText(lead), lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado cambia el estado del pipeline. El valor ya viene validado
// contra el enum en la capa de aplicación; no hay máquina de estados.
func (r *LeadRepo) UpdateEstado(id, estado string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE leads SET estado = $2, updated_at = now() WHERE id = $1`,
		id, estado,
	)
	if err != nil {
		return fmt.Errorf("update lead estado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Assign asigna el lead a un usuario (referencia débil). userID vacío desasigna.
func (r *LeadRepo) Assign(id, userID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE leads SET assigned_to = $2, updated_at = now() WHERE id = $1`,
		id, nullIfEmpty(userID),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("assign lead: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HardDelete elimina definitivamente un lead. Irreversible.
func (r *LeadRepo) HardDelete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Estadisticas calcula los agregados del panel: total, conteos por estado,
// por servicio de interés y por mes de creación (últimos 12 meses).
func (r *LeadRepo) Estadisticas() (*repository.LeadStats, error) {
	ctx := context.Background()
	stats := &repository.LeadStats{}

	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}

	byEstado, err := r.countsBy(ctx, `SELECT estado, COUNT(*) FROM leads GROUP BY estado ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("leads por estado: %w", err)
	}
	stats.PorEstado = byEstado

	byServicio, err := r.countsBy(ctx, `SELECT COALESCE(NULLIF(servicio_interes, ''), 'sin-servicio'), COUNT(*) FROM leads GROUP BY 1 ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("leads por servicio: %w", err)
	}
	stats.PorServicio = byServicio

	byMes, err := r.countsBy(ctx, `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM'), COUNT(*)
		FROM leads
		WHERE created_at >= date_trunc('month', now()) - interval '11 months'
		GROUP BY 1 ORDER BY 1 ASC`)
	if err != nil {
		return nil, fmt.Errorf("leads por mes: %w", err)
	}
	stats.PorMes = byMes

	return stats, nil
}

func (r *LeadRepo) countsBy(ctx context.Context, query string) ([]repository.LeadCount, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []repository.LeadCount
	for rows.Next() {
		var c repository.LeadCount
		if err := rows.Scan(&c.Key, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
