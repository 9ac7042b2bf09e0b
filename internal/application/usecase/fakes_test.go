package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
	"github.com/jhoicas/agencia-api/pkg/normalize"
)

// Fakes en memoria de los puertos de persistencia. Replican el contrato de
// los adaptadores reales: getters devuelven (nil, nil) si no existe, las
// claves duplicadas fallan con ErrDuplicate y las escrituras sobre claves
// inexistentes con ErrNotFound.

// ── ServiceRepository ─────────────────────────────────────────────────────────

type fakeServiceRepo struct {
	items map[string]*entity.Service
	// failOnKey fuerza un error en SetDisplayOrder para probar rollback.
	failOnKey string
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{items: make(map[string]*entity.Service)}
}

func (r *fakeServiceRepo) Create(s *entity.Service) error {
	if _, exists := r.items[s.ServiceID]; exists {
		return domain.ErrDuplicate
	}
	cp := *s
	r.items[s.ServiceID] = &cp
	return nil
}

func (r *fakeServiceRepo) GetByServiceID(serviceID string, includeInactive bool) (*entity.Service, error) {
	s, exists := r.items[serviceID]
	if !exists {
		return nil, nil
	}
	if !includeInactive && s.Status != entity.CatalogStatusActive {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) List(f repository.CatalogFilter) ([]*entity.Service, int, error) {
	var all []*entity.Service
	for _, s := range r.items {
		if !f.IncludeInactive && f.Status == "" && s.Status != entity.CatalogStatusActive {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		cp := *s
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DisplayOrder < all[j].DisplayOrder })
	total := len(all)
	start := f.Offset()
	if start > total {
		start = total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *fakeServiceRepo) Update(s *entity.Service) error {
	if _, exists := r.items[s.ServiceID]; !exists {
		return domain.ErrNotFound
	}
	cp := *s
	r.items[s.ServiceID] = &cp
	return nil
}

func (r *fakeServiceRepo) ChangeStatus(serviceID, status string) error {
	s, exists := r.items[serviceID]
	if !exists {
		return domain.ErrNotFound
	}
	s.Status = status
	return nil
}

func (r *fakeServiceRepo) SetDisplayOrder(serviceID string, order int) error {
	if serviceID == r.failOnKey {
		return errors.New("fallo inyectado")
	}
	s, exists := r.items[serviceID]
	if !exists {
		return domain.ErrNotFound
	}
	s.DisplayOrder = order
	return nil
}

func (r *fakeServiceRepo) HardDelete(serviceID string) error {
	if _, exists := r.items[serviceID]; !exists {
		return domain.ErrNotFound
	}
	delete(r.items, serviceID)
	return nil
}

func (r *fakeServiceRepo) snapshot() map[string]*entity.Service {
	snap := make(map[string]*entity.Service, len(r.items))
	for k, v := range r.items {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

// ── PlanRepository ────────────────────────────────────────────────────────────

type fakePlanRepo struct {
	items map[string]*entity.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{items: make(map[string]*entity.Plan)}
}

func (r *fakePlanRepo) Create(p *entity.Plan) error {
	if _, exists := r.items[p.PlanID]; exists {
		return domain.ErrDuplicate
	}
	cp := *p
	r.items[p.PlanID] = &cp
	return nil
}

func (r *fakePlanRepo) GetByPlanID(planID string, includeInactive bool) (*entity.Plan, error) {
	p, exists := r.items[planID]
	if !exists {
		return nil, nil
	}
	if !includeInactive && p.Status != entity.CatalogStatusActive {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) List(f repository.CatalogFilter) ([]*entity.Plan, int, error) {
	var all []*entity.Plan
	for _, p := range r.items {
		if !f.IncludeInactive && f.Status == "" && p.Status != entity.CatalogStatusActive {
			continue
		}
		if f.IsFeatured != nil && p.IsFeatured != *f.IsFeatured {
			continue
		}
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DisplayOrder < all[j].DisplayOrder })
	return all, len(all), nil
}

func (r *fakePlanRepo) Update(p *entity.Plan) error {
	if _, exists := r.items[p.PlanID]; !exists {
		return domain.ErrNotFound
	}
	cp := *p
	r.items[p.PlanID] = &cp
	return nil
}

func (r *fakePlanRepo) ChangeStatus(planID, status string) error {
	p, exists := r.items[planID]
	if !exists {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

func (r *fakePlanRepo) SetFeatured(planID string, featured bool) error {
	p, exists := r.items[planID]
	if !exists {
		return domain.ErrNotFound
	}
	p.IsFeatured = featured
	return nil
}

func (r *fakePlanRepo) ClearFeatured() error {
	for _, p := range r.items {
		p.IsFeatured = false
	}
	return nil
}

func (r *fakePlanRepo) SetDisplayOrder(planID string, order int) error {
	p, exists := r.items[planID]
	if !exists {
		return domain.ErrNotFound
	}
	p.DisplayOrder = order
	return nil
}

func (r *fakePlanRepo) HardDelete(planID string) error {
	if _, exists := r.items[planID]; !exists {
		return domain.ErrNotFound
	}
	delete(r.items, planID)
	return nil
}

func (r *fakePlanRepo) snapshot() map[string]*entity.Plan {
	snap := make(map[string]*entity.Plan, len(r.items))
	for k, v := range r.items {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

// featuredCount cuántos planes están destacados.
func (r *fakePlanRepo) featuredCount() int {
	n := 0
	for _, p := range r.items {
		if p.IsFeatured {
			n++
		}
	}
	return n
}

// ── ProductRepository / BlogPostRepository mínimos (solo para el tx runner) ──

type fakeProductRepo struct{}

func (fakeProductRepo) Create(*entity.Product) error { return nil }
func (fakeProductRepo) GetByProductID(string, bool) (*entity.Product, error) {
	return nil, nil
}
func (fakeProductRepo) List(repository.CatalogFilter) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (fakeProductRepo) Update(*entity.Product) error { return nil }
func (fakeProductRepo) ChangeStatus(string, string) error { return nil }
func (fakeProductRepo) SetFeatured(string, bool) error { return nil }
func (fakeProductRepo) SetDisplayOrder(string, int) error { return nil }
func (fakeProductRepo) HardDelete(string) error { return nil }

type fakeBlogPostRepo struct{}

func (fakeBlogPostRepo) Create(*entity.BlogPost) error { return nil }
func (fakeBlogPostRepo) GetBySlug(string, bool) (*entity.BlogPost, error) {
	return nil, nil
}
func (fakeBlogPostRepo) List(repository.CatalogFilter) ([]*entity.BlogPost, int, error) {
	return nil, 0, nil
}
func (fakeBlogPostRepo) Update(*entity.BlogPost) error { return nil }
func (fakeBlogPostRepo) ChangeStatus(string, string) error { return nil }
func (fakeBlogPostRepo) SetFeatured(string, bool) error { return nil }
func (fakeBlogPostRepo) SetDisplayOrder(string, int) error { return nil }
func (fakeBlogPostRepo) HardDelete(string) error { return nil }

// ── CatalogTxRunner ───────────────────────────────────────────────────────────

// fakeTxRunner simula la transacción: toma un snapshot de los repos y lo
// restaura si el callback falla, de modo que o se aplica todo o nada.
type fakeTxRunner struct {
	services *fakeServiceRepo
	plans    *fakePlanRepo
}

var _ usecase.CatalogTxRunner = (*fakeTxRunner)(nil)

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	serviceRepo repository.ServiceRepository,
	planRepo repository.PlanRepository,
	productRepo repository.ProductRepository,
	postRepo repository.BlogPostRepository,
) error) error {
	serviceSnap := tx.services.snapshot()
	planSnap := tx.plans.snapshot()
	if err := fn(tx.services, tx.plans, fakeProductRepo{}, fakeBlogPostRepo{}); err != nil {
		tx.services.items = serviceSnap
		tx.plans.items = planSnap
		return err
	}
	return nil
}

// ── ContentRepository ─────────────────────────────────────────────────────────

type fakeContentRepo struct {
	items map[string]*entity.ContentSection
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{items: make(map[string]*entity.ContentSection)}
}

func (r *fakeContentRepo) Upsert(s *entity.ContentSection) error {
	cp := *s
	r.items[s.SectionKey] = &cp
	return nil
}

func (r *fakeContentRepo) GetBySectionKey(sectionKey string, includeUnpublished bool) (*entity.ContentSection, error) {
	s, exists := r.items[sectionKey]
	if !exists {
		return nil, nil
	}
	if !includeUnpublished && s.Status != entity.ContentStatusPublished {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeContentRepo) List(includeUnpublished bool) ([]*entity.ContentSection, error) {
	var all []*entity.ContentSection
	for _, s := range r.items {
		if !includeUnpublished && s.Status != entity.ContentStatusPublished {
			continue
		}
		cp := *s
		all = append(all, &cp)
	}
	return all, nil
}

// UpdatePartial replica la semántica del adaptador real: funde el valor en
// la ruta creando objetos intermedios, sin tocar claves hermanas.
func (r *fakeContentRepo) UpdatePartial(sectionKey string, path []string, value json.RawMessage, updatedBy string) error {
	s, exists := r.items[sectionKey]
	if !exists {
		return domain.ErrNotFound
	}
	var doc map[string]any
	if len(s.ContentData) > 0 {
		if err := json.Unmarshal(s.ContentData, &doc); err != nil {
			return err
		}
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	cur := doc
	for _, seg := range path[:len(path)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			cur[seg] = next
		}
		cur = next
	}
	var v any
	if err := json.Unmarshal(value, &v); err != nil {
		return err
	}
	cur[path[len(path)-1]] = v

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.ContentData = raw
	s.UpdatedBy = updatedBy
	s.UpdatedAt = time.Now()
	return nil
}

func (r *fakeContentRepo) ChangeStatus(sectionKey, status string) error {
	s, exists := r.items[sectionKey]
	if !exists {
		return domain.ErrNotFound
	}
	s.Status = status
	return nil
}

func (r *fakeContentRepo) HardDelete(sectionKey string) error {
	if _, exists := r.items[sectionKey]; !exists {
		return domain.ErrNotFound
	}
	delete(r.items, sectionKey)
	return nil
}

// ── LeadRepository ────────────────────────────────────────────────────────────

type fakeLeadRepo struct {
	items map[string]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{items: make(map[string]*entity.Lead)}
}

func (r *fakeLeadRepo) Create(l *entity.Lead) error {
	cp := *l
	r.items[l.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) GetByID(id string) (*entity.Lead, error) {
	l, exists := r.items[id]
	if !exists {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLeadRepo) List(f repository.LeadFilter) ([]*entity.Lead, int, error) {
	var all []*entity.Lead
	q := normalize.Fold(f.Query)
	for _, l := range r.items {
		if f.Estado != "" && l.Estado != f.Estado {
			continue
		}
		if f.ServicioInteres != "" && l.ServicioInteres != f.ServicioInteres {
			continue
		}
		if f.AssignedTo != "" && l.AssignedTo != f.AssignedTo {
			continue
		}
		if q != "" {
			haystack := normalize.Fold(l.Nombre + " " + l.Email + " " + l.Empresa)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		cp := *l
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := len(all)
	start := f.Offset()
	if start > total {
		start = total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *fakeLeadRepo) Update(l *entity.Lead) error {
	if _, exists := r.items[l.ID]; !exists {
		return domain.ErrNotFound
	}
	cp := *l
	r.items[l.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) UpdateEstado(id, estado string) error {
	l, exists := r.items[id]
	if !exists {
		return domain.ErrNotFound
	}
	l.Estado = estado
	return nil
}

func (r *fakeLeadRepo) Assign(id, userID string) error {
	l, exists := r.items[id]
	if !exists {
		return domain.ErrNotFound
	}
	l.AssignedTo = userID
	return nil
}

func (r *fakeLeadRepo) HardDelete(id string) error {
	if _, exists := r.items[id]; !exists {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeLeadRepo) Estadisticas() (*repository.LeadStats, error) {
	stats := &repository.LeadStats{Total: len(r.items)}
	porEstado := make(map[string]int)
	for _, l := range r.items {
		porEstado[l.Estado]++
	}
	for k, v := range porEstado {
		stats.PorEstado = append(stats.PorEstado, repository.LeadCount{Key: k, Count: v})
	}
	return stats, nil
}
