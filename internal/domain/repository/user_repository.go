package repository

import "github.com/tu-usuario/agencia-ops/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (equipo de la agencia).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}
