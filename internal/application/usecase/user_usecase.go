package usecase

import (
	"time"

	"github.com/jhoicas/stocktrack-api/internal/application/auth"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/scope"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de usuarios (solo admin). El alta vive en
// auth.AuthUseCase.RegisterUser.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista todos los usuarios (sin hash).
func (uc *UserUseCase) List(caller scope.Access) ([]dto.UserResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// GetByID obtiene un usuario. ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(caller scope.Access, id string) (*dto.UserResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// Update actualización parcial: username, role, site_id y password (que se
// re-hashea). Campos nil no cambian.
func (uc *UserUseCase) Update(caller scope.Access, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Username != nil {
		if *in.Username == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Username = *in.Username
	}
	if in.Role != nil {
		if *in.Role != entity.RoleAdmin && *in.Role != entity.RoleTechnician {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.SiteID != nil {
		user.SiteID = in.SiteID
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. No toca el libro: los movimientos que registró
// conservan su user_id nullable.
func (uc *UserUseCase) Delete(caller scope.Access, id string) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}
