package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/agencia-api/internal/application/auth"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/domain"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// UserUseCase administración de usuarios del panel (solo admin). El alta
// vive en auth.AuthUseCase.RegisterUser.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por id.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios paginados.
func (uc *UserUseCase) List(page, limit int) ([]dto.UserResponse, *dto.Pagination, error) {
	f := repository.CatalogFilter{Page: page, Limit: limit}
	f.Normalize()
	list, total, err := uc.repo.List(f.Page, f.Limit)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, dto.NewPagination(f.Page, f.Limit, total), nil
}

// Update aplica una actualización parcial de nombre o rol.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Empty() {
		return nil, fmt.Errorf("%w: ningún campo actualizable presente", domain.ErrInvalidInput)
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: rol %q no permitido", domain.ErrInvalidInput, *in.Role)
		}
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ChangeStatus activa, desactiva o suspende la cuenta. Un usuario no activo
// pierde el acceso en su siguiente request aunque su token siga vigente.
func (uc *UserUseCase) ChangeStatus(id, status string) error {
	if !entity.ValidUserStatus(status) {
		return fmt.Errorf("%w: estado %q no permitido; valores: %s",
			domain.ErrInvalidInput, status, strings.Join(entity.UserStatuses, ", "))
	}
	return uc.repo.ChangeStatus(id, status)
}
