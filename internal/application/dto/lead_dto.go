package dto

import "time"

// CreateLeadRequest entrada del formulario público de contacto.
type CreateLeadRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=1,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Telefono        string `json:"telefono"`
	Empresa         string `json:"empresa"`
	ServicioInteres string `json:"servicio_interes"`
	Mensaje         string `json:"mensaje"`
}

// UpdateLeadRequest actualización parcial de un lead (panel CRM).
type UpdateLeadRequest struct {
	Nombre          *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Telefono        *string `json:"telefono"`
	Empresa         *string `json:"empresa"`
	ServicioInteres *string `json:"servicio_interes"`
	Mensaje         *string `json:"mensaje"`
	Notas           *string `json:"notas"`
}

// Empty indica si la intersección con los campos permitidos quedó vacía.
func (r UpdateLeadRequest) Empty() bool {
	return r.Nombre == nil && r.Email == nil && r.Telefono == nil &&
		r.Empresa == nil && r.ServicioInteres == nil && r.Mensaje == nil && r.Notas == nil
}

// ChangeEstadoRequest cambio de estado del pipeline.
type ChangeEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// AssignLeadRequest asignación del lead a un usuario. Vacío desasigna.
type AssignLeadRequest struct {
	UserID string `json:"user_id"`
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID              string    `json:"id"`
	Nombre          string    `json:"nombre"`
	Email           string    `json:"email"`
	Telefono        string    `json:"telefono"`
	Empresa         string    `json:"empresa,omitempty"`
	ServicioInteres string    `json:"servicio_interes"`
	Mensaje         string    `json:"mensaje,omitempty"`
	Estado          string    `json:"estado"`
	AssignedTo      string    `json:"assigned_to,omitempty"`
	Notas           string    `json:"notas,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LeadCountItem un grupo y su conteo en las estadísticas.
type LeadCountItem struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// LeadStatsResponse agregados del CRM.
type LeadStatsResponse struct {
	Total       int             `json:"total"`
	PorEstado   []LeadCountItem `json:"por_estado"`
	PorServicio []LeadCountItem `json:"por_servicio"`
	PorMes      []LeadCountItem `json:"por_mes"`
}

// LegacyLeadRecord registro de lead tal como viene del volcado legacy:
// igual que CreateLeadRequest pero conserva el estado del pipeline.
type LegacyLeadRecord struct {
	CreateLeadRequest
	Estado string `json:"estado"`
}
