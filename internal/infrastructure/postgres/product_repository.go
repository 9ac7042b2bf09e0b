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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, product_id, name, description, price, includes, display_order, is_featured, status, created_by, created_at, updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var createdBy *string
	err := row.Scan(
		&p.ID, &p.ProductID, &p.Name, &p.Description, &p.Price, &p.Includes,
		&p.DisplayOrder, &p.IsFeatured, &p.Status, &createdBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		p.CreatedBy = *createdBy
	}
	return &p, nil
}

// Create persiste un nuevo producto. Includes se almacena como JSONB.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, product_id, name, description, price, includes, display_order, is_featured, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ProductID, product.Name, product.Description, product.Price,
		product.Includes, product.DisplayOrder, product.IsFeatured, product.Status,
		nullIfEmpty(product.CreatedBy), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByProductID obtiene un producto por su clave de negocio.
func (r *ProductRepo) GetByProductID(productID string, includeInactive bool) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	args := []any{productID}
	if !includeInactive {
		query += ` AND status = $2`
		args = append(args, entity.CatalogStatusActive)
	}
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista productos con filtros permitidos y paginación.
func (r *ProductRepo) List(f repository.CatalogFilter) ([]*entity.Product, int, error) {
	f.Normalize()
	where, args := buildCatalogWhere(f, entity.CatalogStatusActive, true)

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM products %s ORDER BY display_order ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)+1, len(args)+2)
	rows, err := r.q.Query(context.Background(), query, append(args, f.Limit, f.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update actualiza un producto existente por clave de negocio.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, includes = $5, display_order = $6, updated_at = $7
		WHERE product_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ProductID, product.Name, product.Description, product.Price,
		product.Includes, product.DisplayOrder, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ChangeStatus cambia el estado del producto.
func (r *ProductRepo) ChangeStatus(productID, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET status = $2, updated_at = now() WHERE product_id = $1`,
		productID, status,
	)
	if err != nil {
		return fmt.Errorf("change product status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetFeatured marca o desmarca un producto destacado. Sin exclusividad:
// una sola sentencia basta.
func (r *ProductRepo) SetFeatured(productID string, featured bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_featured = $2, updated_at = now() WHERE product_id = $1`,
		productID, featured,
	)
	if err != nil {
		return fmt.Errorf("set product featured: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetDisplayOrder fija la posición del producto. Usado dentro de la transacción de reorder.
func (r *ProductRepo) SetDisplayOrder(productID string, order int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET display_order = $2, updated_at = now() WHERE product_id = $1`,
		productID, order,
	)
	if err != nil {
		return fmt.Errorf("set product order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HardDelete elimina definitivamente un producto. Irreversible.
func (r *ProductRepo) HardDelete(productID string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
