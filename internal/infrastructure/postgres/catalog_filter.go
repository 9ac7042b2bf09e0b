package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// buildCatalogWhere construye la cláusula WHERE de un listado de catálogo a
// partir del conjunto cerrado de filtros de repository.CatalogFilter. Nunca
// interpola claves libres del caller: solo columnas conocidas con parámetros
// posicionales. defaultVisible es el estado visible cuando no se pide otra
// cosa (active para catálogo, published para posts); hasFeatured indica si la
// tabla tiene columna is_featured.
//
// La misma cláusula y los mismos argumentos alimentan el SELECT paginado y el
// COUNT espejo, de modo que total y página nunca divergen.
func buildCatalogWhere(f repository.CatalogFilter, defaultVisible string, hasFeatured bool) (string, []any) {
	var conds []string
	var args []any

	switch {
	case f.Status != "":
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	case !f.IncludeInactive:
		args = append(args, defaultVisible)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if hasFeatured && f.IsFeatured != nil {
		args = append(args, *f.IsFeatured)
		conds = append(conds, fmt.Sprintf("is_featured = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
