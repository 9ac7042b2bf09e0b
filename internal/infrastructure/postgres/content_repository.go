package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

var _ repository.ContentRepository = (*ContentRepo)(nil)

const contentColumns = `id, section_key, name, content_data, status, updated_by, created_at, updated_at`

// ContentRepo implementación de ContentRepository sobre PostgreSQL.
type ContentRepo struct {
	q Querier
}

// NewContentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContentRepository(q Querier) *ContentRepo {
	return &ContentRepo{q: q}
}

func scanContentSection(row pgx.Row) (*entity.ContentSection, error) {
	var s entity.ContentSection
	var updatedBy *string
	err := row.Scan(
		&s.ID, &s.SectionKey, &s.Name, &s.ContentData, &s.Status, &updatedBy,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedBy != nil {
		s.UpdatedBy = *updatedBy
	}
	return &s, nil
}

// Upsert inserta o reemplaza la sección identificada por section_key.
// Las secciones son un conjunto fijo conocido, por eso la escritura no separa
// create de update.
func (r *ContentRepo) Upsert(section *entity.ContentSection) error {
	query := `
		INSERT INTO content_sections (id, section_key, name, content_data, status, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (section_key) DO UPDATE SET
			name = EXCLUDED.name,
			content_data = EXCLUDED.content_data,
			status = EXCLUDED.status,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		section.ID, section.SectionKey, section.Name, section.ContentData,
		section.Status, nullIfEmpty(section.UpdatedBy), section.CreatedAt, section.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert content section: %w", err)
	}
	return nil
}

// GetBySectionKey obtiene una sección. Por convención solo las publicadas son
// visibles, salvo que includeUnpublished sea true (editores ven borradores).
func (r *ContentRepo) GetBySectionKey(sectionKey string, includeUnpublished bool) (*entity.ContentSection, error) {
	query := `SELECT ` + contentColumns + ` FROM content_sections WHERE section_key = $1`
	args := []any{sectionKey}
	if !includeUnpublished {
		query += ` AND status = $2`
		args = append(args, entity.ContentStatusPublished)
	}
	s, err := scanContentSection(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get content section: %w", err)
	}
	return s, nil
}

// List devuelve todas las secciones. El conjunto es pequeño y fijo: sin paginación.
func (r *ContentRepo) List(includeUnpublished bool) ([]*entity.ContentSection, error) {
	query := `SELECT ` + contentColumns + ` FROM content_sections`
	var args []any
	if !includeUnpublished {
		query += ` WHERE status = $1`
		args = append(args, entity.ContentStatusPublished)
	}
	query += ` ORDER BY section_key ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content sections: %w", err)
	}
	defer rows.Close()

	var list []*entity.ContentSection
	for rows.Next() {
		s, err := scanContentSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content section: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdatePartial funde value en la ruta indicada del documento content_data,
// creando los objetos intermedios que falten, sin tocar claves hermanas.
// Se construye como UNA sentencia UPDATE (ver deepSetExpr): el lock de fila
// serializa escrituras concurrentes, así que dos updates a rutas distintas de
// la misma sección sobreviven ambos (last-writer-wins por ruta, no por documento).
func (r *ContentRepo) UpdatePartial(sectionKey string, path []string, value json.RawMessage, updatedBy string) error {
	if len(path) == 0 {
		return domain.ErrInvalidInput
	}
	expr, args := deepSetExpr(path, value)
	args = append(args, nullIfEmpty(updatedBy), sectionKey)
	query := fmt.Sprintf(`
		UPDATE content_sections
		SET content_data = %s, updated_by = $%d, updated_at = now()
		WHERE section_key = $%d`, expr, len(args)-1, len(args))
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return fmt.Errorf("partial update content section: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// deepSetExpr genera la expresión SQL que aplica jsonb_set en path creando
// los niveles intermedios. jsonb_set solo crea la última clave, así que para
// cada prefijo se garantiza primero que exista un objeto en esa posición
// (si hay un escalar en el camino, se reemplaza por {}). Los segmentos de la
// ruta viajan como parámetros text[]; nada del caller se interpola en el SQL.
func deepSetExpr(path []string, value json.RawMessage) (string, []any) {
	expr := `COALESCE(content_data, '{}'::jsonb)`
	var args []any
	for i := 1; i < len(path); i++ {
		args = append(args, path[:i])
		n := len(args)
		expr = fmt.Sprintf(
			`jsonb_set(%s, $%d::text[], CASE WHEN jsonb_typeof(content_data #> $%d::text[]) = 'object' THEN content_data #> $%d::text[] ELSE '{}'::jsonb END, true)`,
			expr, n, n, n,
		)
	}
	args = append(args, path, string(value))
	n := len(args)
	expr = fmt.Sprintf(`jsonb_set(%s, $%d::text[], $%d::jsonb, true)`, expr, n-1, n)
	return expr, args
}

// ChangeStatus cambia el estado de publicación de la sección.
func (r *ContentRepo) ChangeStatus(sectionKey, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE content_sections SET status = $2, updated_at = now() WHERE section_key = $1`,
		sectionKey, status,
	)
	if err != nil {
		return fmt.Errorf("change content status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HardDelete elimina definitivamente una sección. Irreversible.
func (r *ContentRepo) HardDelete(sectionKey string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM content_sections WHERE section_key = $1`, sectionKey)
	if err != nil {
		return fmt.Errorf("delete content section: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
