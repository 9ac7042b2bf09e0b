package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// LeadUseCase casos de uso del CRM de leads. Create es la única operación
// alcanzable sin autenticación: la alimenta el formulario público del sitio.
type LeadUseCase struct {
	repo repository.LeadRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// Create registra un lead nuevo en estado "nuevo", sin asignar.
func (uc *LeadUseCase) Create(in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: nombre y email son obligatorios", domain.ErrInvalidInput)
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:              uuid.New().String(),
		Nombre:          strings.TrimSpace(in.Nombre),
		Email:           strings.TrimSpace(strings.ToLower(in.Email)),
		Telefono:        in.Telefono,
		Empresa:         in.Empresa,
		ServicioInteres: in.ServicioInteres,
		Mensaje:         in.Mensaje,
		Estado:          entity.LeadEstadoNuevo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// GetByID obtiene un lead por su id.
func (uc *LeadUseCase) GetByID(id string) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	return toLeadResponse(lead), nil
}

// List lista leads con filtros del pipeline, búsqueda y paginación. La
// búsqueda ignora mayúsculas y acentos.
func (uc *LeadUseCase) List(f repository.LeadFilter) ([]dto.LeadResponse, *dto.Pagination, error) {
	if f.Estado != "" && !entity.ValidLeadEstado(f.Estado) {
		return nil, nil, fmt.Errorf("%w: estado %q no permitido; valores: %s",
			domain.ErrInvalidInput, f.Estado, strings.Join(entity.LeadEstados, ", "))
	}
	f.Normalize()
	list, total, err := uc.repo.List(f)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLeadResponse(l))
	}
	return items, dto.NewPagination(f.Page, f.Limit, total), nil
}

// Update aplica una actualización parcial desde el panel CRM.
func (uc *LeadUseCase) Update(id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: ningún campo actualizable presente", domain.ErrInvalidInput)
	}
	lead, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		lead.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Email != nil {
		lead.Email = strings.TrimSpace(strings.ToLower(*in.Email))
	}
	if in.Telefono != nil {
		lead.Telefono = *in.Telefono
	}
	if in.Empresa != nil {
		lead.Empresa = *in.Empresa
	}
	if in.ServicioInteres != nil {
		lead.ServicioInteres = *in.ServicioInteres
	}
	if in.Mensaje != nil {
		lead.Mensaje = *in.Mensaje
	}
	if in.Notas != nil {
		lead.Notas = *in.Notas
	}
	lead.UpdatedAt = time.Now()
	if err := uc.repo.Update(lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// ChangeEstado mueve el lead en el pipeline. Cualquier estado del enum es
// alcanzable desde cualquier otro.
func (uc *LeadUseCase) ChangeEstado(id, estado string) error {
	if !entity.ValidLeadEstado(estado) {
		return fmt.Errorf("%w: estado %q no permitido; valores: %s",
			domain.ErrInvalidInput, estado, strings.Join(entity.LeadEstados, ", "))
	}
	return uc.repo.UpdateEstado(id, estado)
}

// Assign asigna el lead a un usuario del equipo; userID vacío desasigna.
// Un userID inexistente se rechaza con ErrInvalidInput.
func (uc *LeadUseCase) Assign(id, userID string) error {
	return uc.repo.Assign(id, userID)
}

// HardDelete elimina definitivamente. Solo rutas admin llegan aquí.
func (uc *LeadUseCase) HardDelete(id string) error {
	return uc.repo.HardDelete(id)
}

// ImportLegacy inserta los leads del volcado legacy conservando su estado.
// Los leads no tienen clave de negocio, así que no hay rama de upsert.
func (uc *LeadUseCase) ImportLegacy(records []dto.LegacyLeadRecord) (inserted int, err error) {
	for _, rec := range records {
		out, err := uc.Create(rec.CreateLeadRequest)
		if err != nil {
			return inserted, fmt.Errorf("importar lead %q: %w", rec.Email, err)
		}
		if rec.Estado != "" && rec.Estado != entity.LeadEstadoNuevo {
			if err := uc.ChangeEstado(out.ID, rec.Estado); err != nil {
				return inserted, fmt.Errorf("estado del lead %q: %w", rec.Email, err)
			}
		}
		inserted++
	}
	return inserted, nil
}

// Estadisticas devuelve los agregados del panel CRM.
func (uc *LeadUseCase) Estadisticas() (*dto.LeadStatsResponse, error) {
	stats, err := uc.repo.Estadisticas()
	if err != nil {
		return nil, err
	}
	return &dto.LeadStatsResponse{
		Total:       stats.Total,
		PorEstado:   toLeadCountItems(stats.PorEstado),
		PorServicio: toLeadCountItems(stats.PorServicio),
		PorMes:      toLeadCountItems(stats.PorMes),
	}, nil
}

func toLeadCountItems(counts []repository.LeadCount) []dto.LeadCountItem {
	items := make([]dto.LeadCountItem, 0, len(counts))
	for _, c := range counts {
		items = append(items, dto.LeadCountItem{Key: c.Key, Count: c.Count})
	}
	return items
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	return &dto.LeadResponse{
		ID:              l.ID,
		Nombre:          l.Nombre,
		Email:           l.Email,
		Telefono:        l.Telefono,
		Empresa:         l.Empresa,
		ServicioInteres: l.ServicioInteres,
		Mensaje:         l.Mensaje,
		Estado:          l.Estado,
		AssignedTo:      l.AssignedTo,
		Notas:           l.Notas,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
