// Package directory contiene los casos de uso CRUD del directorio de la
// agencia: clientes, proyectos y equipo.
package directory

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/tu-usuario/agencia-ops/internal/application/dto"
	"github.com/tu-usuario/agencia-ops/internal/domain"
	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
	"github.com/tu-usuario/agencia-ops/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes de la agencia.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un nuevo cliente. El estado por defecto es active.
func (uc *ClientUseCase) Create(in dto.SaveClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ClientStatusActive
	}
	if status != entity.ClientStatusActive && status != entity.ClientStatusInactive {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Address:   in.Address,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(c *entity.Client, _ int) *dto.ClientResponse {
		return toClientResponse(c)
	}), nil
}

// Update actualiza un cliente existente.
func (uc *ClientUseCase) Update(id string, in dto.SaveClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = in.Phone
	client.Company = in.Company
	client.Address = in.Address
	if in.Status != "" {
		if in.Status != entity.ClientStatusActive && in.Status != entity.ClientStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		client.Status = in.Status
	}
	client.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente por ID. ErrNotFound si no existe.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Address:   c.Address,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
	}
}
