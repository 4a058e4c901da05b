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

// ProjectUseCase casos de uso para proyectos. Todo proyecto pertenece a un
// cliente existente; la pertenencia se valida en create y update.
type ProjectUseCase struct {
	repo       repository.ProjectRepository
	clientRepo repository.ClientRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, clientRepo: clientRepo}
}

func validProjectStatus(s string) bool {
	return s == entity.ProjectStatusActive || s == entity.ProjectStatusCompleted || s == entity.ProjectStatusOnHold
}

// Create crea un proyecto. ErrNotFound si el cliente no existe.
func (uc *ProjectUseCase) Create(in dto.SaveProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectStatusActive
	}
	if !validProjectStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	project := &entity.Project{
		ID:          uuid.New().String(),
		Name:        in.Name,
		ClientID:    in.ClientID,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		Budget:      in.Budget,
		TeamMembers: in.TeamMembers,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if project.TeamMembers == nil {
		project.TeamMembers = []string{}
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID obtiene un proyecto por ID.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// List lista proyectos con paginación.
func (uc *ProjectUseCase) List(page dto.PageRequest) ([]*dto.ProjectResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(p *entity.Project, _ int) *dto.ProjectResponse {
		return toProjectResponse(p)
	}), nil
}

// ListByClient lista los proyectos de un cliente, en orden de creación.
func (uc *ProjectUseCase) ListByClient(clientID string) ([]*dto.ProjectResponse, error) {
	list, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return lo.Map(list, func(p *entity.Project, _ int) *dto.ProjectResponse {
		return toProjectResponse(p)
	}), nil
}

// Update actualiza un proyecto. Si cambia el cliente, valida que exista.
func (uc *ProjectUseCase) Update(id string, in dto.SaveProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.ClientID != project.ClientID {
		client, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.Status != "" && !validProjectStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	project.Name = in.Name
	project.ClientID = in.ClientID
	project.Description = in.Description
	project.StartDate = in.StartDate
	project.EndDate = in.EndDate
	if in.Status != "" {
		project.Status = in.Status
	}
	project.Budget = in.Budget
	if in.TeamMembers != nil {
		project.TeamMembers = in.TeamMembers
	}
	project.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete elimina un proyecto por ID.
func (uc *ProjectUseCase) Delete(id string) error {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	members := p.TeamMembers
	if members == nil {
		members = []string{}
	}
	return &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		ClientID:    p.ClientID,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      p.Status,
		Budget:      p.Budget,
		TeamMembers: members,
		CreatedAt:   p.CreatedAt,
	}
}
