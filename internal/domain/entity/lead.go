package entity

import "time"

// Estados del pipeline de un Lead.
const (
	LeadEstadoNuevo      = "nuevo"
	LeadEstadoContactado = "contactado"
	LeadEstadoCalificado = "calificado"
	LeadEstadoCerrado    = "cerrado"
)

// LeadEstados lista los estados permitidos (para mensajes de validación).
var LeadEstados = []string{LeadEstadoNuevo, LeadEstadoContactado, LeadEstadoCalificado, LeadEstadoCerrado}

// Lead representa un contacto capturado desde el formulario público del sitio.
// AssignedTo es una referencia débil a User (puede quedar vacía).
type Lead struct {
	ID              string
	Nombre          string
	Email           string
	Telefono        string
	Empresa         string
	ServicioInteres string
	Mensaje         string
	Estado          string // nuevo, contactado, calificado, cerrado
	AssignedTo      string // user id, vacío si no está asignado
	Notas           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidLeadEstado indica si estado pertenece al conjunto permitido.
// Las transiciones no están restringidas: cualquier valor del enum es válido
// desde cualquier otro.
func ValidLeadEstado(estado string) bool {
	for _, e := range LeadEstados {
		if e == estado {
			return true
		}
	}
	return false
}
