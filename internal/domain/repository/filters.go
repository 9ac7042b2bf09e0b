package repository

// CatalogFilter filtros permitidos para listados de catálogo
// (Service, Plan, Product, BlogPost). Cualquier otro criterio de filtrado
// se ignora: el WHERE se construye solo a partir de estos campos.
type CatalogFilter struct {
	Status          string // filtra por estado exacto; vacío = visibles por defecto
	IncludeInactive bool   // true: no restringir por estado
	IsFeatured      *bool  // nil = sin filtro
	Page            int    // 1-based; se corrige a 1 si es menor
	Limit           int
}

// Normalize corrige Page y Limit a valores positivos.
func (f *CatalogFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

// Offset calcula el desplazamiento SQL a partir de Page y Limit.
func (f CatalogFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// LeadFilter filtros permitidos para listados de leads.
type LeadFilter struct {
	Estado          string
	ServicioInteres string
	AssignedTo      string
	Query           string // búsqueda libre sobre el texto normalizado
	Page            int
	Limit           int
}

// Normalize corrige Page y Limit a valores positivos.
func (f *LeadFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

// Offset calcula el desplazamiento SQL a partir de Page y Limit.
func (f LeadFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// OrderPair par (clave de negocio, nueva posición) para reordenamientos.
type OrderPair struct {
	BusinessKey string
	Order       int
}
