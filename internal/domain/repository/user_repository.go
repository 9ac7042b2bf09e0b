package repository

import "github.com/jhoicas/agencia-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los getters devuelven (nil, nil) cuando el usuario no existe. FindByEmail
// es el único camino que entrega el hash de contraseña; se usa solo en auth.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(page, limit int) ([]*entity.User, int, error)
	Update(user *entity.User) error
	UpdatePassword(id, passwordHash string) error
	ChangeStatus(id, status string) error
}
