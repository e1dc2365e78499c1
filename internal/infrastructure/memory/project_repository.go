package memory

import (
	"context"

	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// ProjectRepository proyectos en memoria.
type ProjectRepository struct {
	s *Store
}

// NewProjectRepository construye el repositorio sobre el almacén.
func NewProjectRepository(s *Store) *ProjectRepository {
	return &ProjectRepository{s: s}
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)

func (r *ProjectRepository) Create(_ context.Context, p *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.projects {
		if other.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	p.ID = r.s.nextID("projects")
	r.s.projects[p.ID] = *p
	return nil
}

func (r *ProjectRepository) GetByID(_ context.Context, id int64) (*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProjectRepository) GetByCode(_ context.Context, code string) (*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.projects {
		if p.Code == code {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *ProjectRepository) filter(keep func(entity.Project) bool) []*entity.Project {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Project, 0)
	for _, id := range sortedKeys(r.s.projects) {
		p := r.s.projects[id]
		if keep(p) {
			out = append(out, &p)
		}
	}
	return out
}

func (r *ProjectRepository) List(_ context.Context) ([]*entity.Project, error) {
	return r.filter(func(entity.Project) bool { return true }), nil
}

func (r *ProjectRepository) ListByStatus(_ context.Context, status string) ([]*entity.Project, error) {
	return r.filter(func(p entity.Project) bool { return p.Status == status }), nil
}

func (r *ProjectRepository) Search(_ context.Context, keyword string) ([]*entity.Project, error) {
	return r.filter(func(p entity.Project) bool {
		return containsFold(p.Code, keyword) || containsFold(p.Name, keyword) || containsFold(p.Client, keyword)
	}), nil
}

func (r *ProjectRepository) Update(_ context.Context, p *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, other := range r.s.projects {
		if id != p.ID && other.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.projects[p.ID] = *p
	return nil
}

// Delete borra el proyecto con sus componentes; las transacciones quedan sin proyecto.
func (r *ProjectRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.projects, id)
	for piID, pi := range r.s.projectItems {
		if pi.ProjectID == id {
			delete(r.s.projectItems, piID)
		}
	}
	for tID, t := range r.s.transactions {
		if t.ProjectID != nil && *t.ProjectID == id {
			t.ProjectID = nil
			r.s.transactions[tID] = t
		}
	}
	return nil
}

// ProjectItemRepository componentes requeridos en memoria.
type ProjectItemRepository struct {
	s *Store
}

// NewProjectItemRepository construye el repositorio sobre el almacén.
func NewProjectItemRepository(s *Store) *ProjectItemRepository {
	return &ProjectItemRepository{s: s}
}

var _ repository.ProjectItemRepository = (*ProjectItemRepository)(nil)

func (r *ProjectItemRepository) Create(_ context.Context, pi *entity.ProjectItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projects[pi.ProjectID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.items[pi.ItemID]; !ok {
		return domain.ErrNotFound
	}
	pi.ID = r.s.nextID("project_items")
	stored := *pi
	stored.Item = nil
	r.s.projectItems[pi.ID] = stored
	return nil
}

func (r *ProjectItemRepository) ListByProject(_ context.Context, projectID int64) ([]*entity.ProjectItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.ProjectItem, 0)
	for _, id := range sortedKeys(r.s.projectItems) {
		pi := r.s.projectItems[id]
		if pi.ProjectID != projectID {
			continue
		}
		if it, ok := r.s.items[pi.ItemID]; ok {
			item := it
			pi.Item = &item
		}
		out = append(out, &pi)
	}
	return out, nil
}

func (r *ProjectItemRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.projectItems[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.projectItems, id)
	return nil
}
