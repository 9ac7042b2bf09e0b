package usecase

import (
	"context"
	"regexp"

	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta fn dentro de una transacción con repos de catálogo
// atados a la tx. Lo implementa postgres.TxRunner. Se usa en las operaciones
// multi-sentencia: exclusividad de plan destacado y reorder por lote.
type CatalogTxRunner interface {
	Run(ctx context.Context, fn func(
		serviceRepo repository.ServiceRepository,
		planRepo repository.PlanRepository,
		productRepo repository.ProductRepository,
		postRepo repository.BlogPostRepository,
	) error) error
}

// businessKeyRe formato de las claves de negocio (slugs) de catálogo.
var businessKeyRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidBusinessKey indica si key cumple el formato [a-z0-9-]+.
func ValidBusinessKey(key string) bool {
	return businessKeyRe.MatchString(key)
}
