package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
)

// Estados válidos para User.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// UserStatuses lista los estados permitidos (para mensajes de validación).
var UserStatuses = []string{UserStatusActive, UserStatusInactive, UserStatusSuspended}

// User representa un usuario del panel de administración.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, editor, user
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole indica si role pertenece al conjunto permitido.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor || role == RoleUser
}

// ValidUserStatus indica si status pertenece al conjunto permitido.
func ValidUserStatus(status string) bool {
	for _, s := range UserStatuses {
		if s == status {
			return true
		}
	}
	return false
}
