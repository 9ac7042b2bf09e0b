package dto

// UpdateUserRequest actualización parcial de un usuario (solo admin).
// La contraseña se cambia por su operación propia.
type UpdateUserRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
	Role *string `json:"role"`
}

// Empty indica si la intersección con los campos permitidos quedó vacía.
func (r UpdateUserRequest) Empty() bool {
	return r.Name == nil && r.Role == nil
}
