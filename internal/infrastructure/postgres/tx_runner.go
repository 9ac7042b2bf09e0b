package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.CatalogTxRunner.
var _ usecase.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Lo usan las operaciones multi-sentencia del catálogo: la exclusividad de
// is_featured en planes (clear + set) y los reordenamientos por lote.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Si fn devuelve error, ninguna de las escrituras queda
// aplicada.
func (r *TxRunner) Run(ctx context.Context, fn func(
	serviceRepo repository.ServiceRepository,
	planRepo repository.PlanRepository,
	productRepo repository.ProductRepository,
	postRepo repository.BlogPostRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	serviceRepo := NewServiceRepository(tx)
	planRepo := NewPlanRepository(tx)
	productRepo := NewProductRepository(tx)
	postRepo := NewBlogPostRepository(tx)

	if err := fn(serviceRepo, planRepo, productRepo, postRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
