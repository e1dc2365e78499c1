package repository

import (
	"context"

	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para proyectos.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id int64) (*entity.Project, error)
	GetByCode(ctx context.Context, code string) (*entity.Project, error)
	List(ctx context.Context) ([]*entity.Project, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Project, error)
	Search(ctx context.Context, keyword string) ([]*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id int64) error
}

// ProjectItemRepository componentes requeridos por proyecto. Las lecturas incluyen el ítem (JOIN).
type ProjectItemRepository interface {
	Create(ctx context.Context, pi *entity.ProjectItem) error
	ListByProject(ctx context.Context, projectID int64) ([]*entity.ProjectItem, error)
	Delete(ctx context.Context, id int64) error
}
