package memory

import (
	"context"

	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/availability"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

// AvailabilitySource expone proyecto, requerimientos e inventario del almacén como lecturas
// independientes.
type AvailabilitySource struct {
	s *Store
}

// NewAvailabilitySource construye la fuente sobre el almacén.
func NewAvailabilitySource(s *Store) *AvailabilitySource {
	return &AvailabilitySource{s: s}
}

func (a *AvailabilitySource) GetProject(_ context.Context, projectID int64) (*entity.Project, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	p, ok := a.s.projects[projectID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (a *AvailabilitySource) ListRequirements(_ context.Context, projectID int64) ([]availability.Requirement, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	reqs := make([]availability.Requirement, 0)
	for _, id := range sortedKeys(a.s.projectItems) {
		pi := a.s.projectItems[id]
		if pi.ProjectID == projectID {
			reqs = append(reqs, availability.Requirement{ItemID: pi.ItemID, RequiredQuantity: pi.RequiredQuantity})
		}
	}
	return reqs, nil
}

func (a *AvailabilitySource) ListStock(_ context.Context) ([]availability.StockLevel, error) {
	items := a.s.snapshotItems()
	levels := make([]availability.StockLevel, 0, len(items))
	for _, id := range sortedKeys(items) {
		it := items[id]
		levels = append(levels, availability.StockLevel{
			ItemID:       it.ID,
			ItemCode:     it.Code,
			ItemName:     it.Name,
			CurrentStock: it.CurrentStock,
		})
	}
	return levels, nil
}
