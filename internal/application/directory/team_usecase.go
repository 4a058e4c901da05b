package directory

import (
	"github.com/samber/lo"

	"github.com/tu-usuario/agencia-ops/internal/application/dto"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
	"github.com/tu-usuario/agencia-ops/internal/domain/repository"
)

// TeamUseCase listado de miembros del equipo (usuarios registrados).
type TeamUseCase struct {
	userRepo repository.UserRepository
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(userRepo repository.UserRepository) *TeamUseCase {
	return &TeamUseCase{userRepo: userRepo}
}

// List devuelve los miembros del equipo sin exponer el hash de contraseña.
func (uc *TeamUseCase) List(page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return lo.Map(users, func(u *entity.User, _ int) *dto.UserResponse {
		return &dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		}
	}), nil
}
