package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// ShortageChecker verifica la disponibilidad del proyecto y notifica faltantes.
type ShortageChecker interface {
	CheckAndNotify(ctx context.Context, projectID int64) (*dto.ProjectAvailabilityResponse, error)
}

// ProjectUseCase casos de uso de proyectos y sus componentes requeridos.
type ProjectUseCase struct {
	projects repository.ProjectRepository
	items    repository.ProjectItemRepository
	stock    repository.ItemRepository
	checker  ShortageChecker
	log      zerolog.Logger
}

// NewProjectUseCase construye el caso de uso. checker puede ser nil.
func NewProjectUseCase(
	projects repository.ProjectRepository,
	items repository.ProjectItemRepository,
	stock repository.ItemRepository,
	checker ShortageChecker,
	log zerolog.Logger,
) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, items: items, stock: stock, checker: checker, log: log}
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}

func applyProjectRequest(p *entity.Project, in dto.ProjectRequest) error {
	code := strings.TrimSpace(in.ProjectCode)
	name := strings.TrimSpace(in.ProjectName)
	if code == "" || name == "" || !entity.IsValidProjectStatus(in.Status) {
		return domain.ErrInvalidInput
	}
	if tooLong(code, entity.MaxProjectCodeLen) || tooLong(name, entity.MaxProjectNameLen) ||
		tooLong(in.Client, entity.MaxProjectClientLen) {
		return domain.ErrInvalidInput
	}
	start, err := parseDate(in.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return err
	}
	if start != nil && end != nil && end.Before(*start) {
		return domain.ErrInvalidInput
	}
	p.Code = code
	p.Name = name
	p.Client = in.Client
	p.Status = in.Status
	p.StartDate = start
	p.EndDate = end
	p.Description = in.Description
	return nil
}

// Create registra un proyecto. Código duplicado → domain.ErrDuplicate.
func (uc *ProjectUseCase) Create(ctx context.Context, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	now := time.Now()
	p := &entity.Project{CreatedAt: now, UpdatedAt: now}
	if err := applyProjectRequest(p, in); err != nil {
		return nil, err
	}
	existing, err := uc.projects.GetByCode(ctx, p.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	out := dto.ToProjectResponse(p)
	return &out, nil
}

// GetByID obtiene un proyecto; domain.ErrNotFound si no existe.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	p, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToProjectResponse(p)
	return &out, nil
}

// GetByCode obtiene un proyecto por código.
func (uc *ProjectUseCase) GetByCode(ctx context.Context, code string) (*dto.ProjectResponse, error) {
	p, err := uc.projects.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToProjectResponse(p)
	return &out, nil
}

// List lista todos los proyectos.
func (uc *ProjectUseCase) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	list, err := uc.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToProjectResponses(list), nil
}

// ListByStatus filtra por estado.
func (uc *ProjectUseCase) ListByStatus(ctx context.Context, status string) ([]dto.ProjectResponse, error) {
	if !entity.IsValidProjectStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.projects.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return dto.ToProjectResponses(list), nil
}

// Search busca por código, nombre o cliente.
func (uc *ProjectUseCase) Search(ctx context.Context, keyword string) ([]dto.ProjectResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.projects.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return dto.ToProjectResponses(list), nil
}

// Update reemplaza los datos del proyecto.
func (uc *ProjectUseCase) Update(ctx context.Context, id int64, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	p, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	oldCode := p.Code
	if err := applyProjectRequest(p, in); err != nil {
		return nil, err
	}
	if p.Code != oldCode {
		other, err := uc.projects.GetByCode(ctx, p.Code)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
	}
	p.UpdatedAt = time.Now()
	if err := uc.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.ToProjectResponse(p)
	return &out, nil
}

// Delete elimina el proyecto (y sus componentes, por cascada).
func (uc *ProjectUseCase) Delete(ctx context.Context, id int64) error {
	return uc.projects.Delete(ctx, id)
}

// ListItems componentes requeridos del proyecto.
func (uc *ProjectUseCase) ListItems(ctx context.Context, projectID int64) ([]dto.ProjectItemResponse, error) {
	if _, err := uc.mustGet(ctx, projectID); err != nil {
		return nil, err
	}
	list, err := uc.items.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectItemResponse, 0, len(list))
	for _, pi := range list {
		out = append(out, dto.ToProjectItemResponse(pi))
	}
	return out, nil
}

// AddItem agrega un componente requerido y luego verifica la disponibilidad del proyecto;
// si falta stock se genera una notificación PROJECT_SHORTAGE. Un fallo en esa verificación
// no revierte el alta.
func (uc *ProjectUseCase) AddItem(ctx context.Context, projectID int64, in dto.ProjectItemRequest) (*dto.ProjectItemResponse, error) {
	if in.RequiredQuantity <= 0 || in.AllocatedQuantity < 0 ||
		in.RequiredQuantity > entity.MaxStock || in.AllocatedQuantity > entity.MaxStock {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.mustGet(ctx, projectID); err != nil {
		return nil, err
	}
	item, err := uc.stock.GetByID(ctx, in.InventoryID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	pi := &entity.ProjectItem{
		ProjectID:         projectID,
		ItemID:            item.ID,
		RequiredQuantity:  in.RequiredQuantity,
		AllocatedQuantity: in.AllocatedQuantity,
		Notes:             in.Notes,
		CreatedAt:         time.Now(),
		Item:              item,
	}
	if err := uc.items.Create(ctx, pi); err != nil {
		return nil, err
	}
	if uc.checker != nil {
		if _, err := uc.checker.CheckAndNotify(ctx, projectID); err != nil {
			uc.log.Warn().Err(err).Int64("project_id", projectID).Msg("verificación de disponibilidad falló")
		}
	}
	out := dto.ToProjectItemResponse(pi)
	return &out, nil
}

// DeleteItem quita un componente requerido.
func (uc *ProjectUseCase) DeleteItem(ctx context.Context, projectItemID int64) error {
	return uc.items.Delete(ctx, projectItemID)
}

func (uc *ProjectUseCase) mustGet(ctx context.Context, id int64) (*entity.Project, error) {
	p, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
