package memory

import (
	"context"

	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// ItemRepository inventario en memoria.
type ItemRepository struct {
	s *Store
	j *journal // no nil solo dentro de TxRunner.Run
}

// NewItemRepository construye el repositorio sobre el almacén.
func NewItemRepository(s *Store) *ItemRepository {
	return &ItemRepository{s: s}
}

var _ repository.ItemRepository = (*ItemRepository)(nil)

func (r *ItemRepository) Create(_ context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.items {
		if it.Code == item.Code {
			return domain.ErrDuplicate
		}
	}
	item.ID = r.s.nextID("inventory")
	r.s.items[item.ID] = *item
	id := item.ID
	r.j.record(func() { delete(r.s.items, id) })
	return nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *ItemRepository) GetByCode(_ context.Context, code string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, it := range r.s.items {
		if it.Code == code {
			out := it
			return &out, nil
		}
	}
	return nil, nil
}

// GetForUpdate en memoria equivale a GetByID; la exclusión la da TxRunner.
func (r *ItemRepository) GetForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepository) filter(keep func(entity.Item) bool) []*entity.Item {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Item, 0)
	for _, id := range sortedKeys(r.s.items) {
		it := r.s.items[id]
		if keep(it) {
			out = append(out, &it)
		}
	}
	return out
}

func (r *ItemRepository) List(_ context.Context) ([]*entity.Item, error) {
	return r.filter(func(entity.Item) bool { return true }), nil
}

func (r *ItemRepository) ListByCategory(_ context.Context, category string) ([]*entity.Item, error) {
	return r.filter(func(it entity.Item) bool { return it.Category == category }), nil
}

func (r *ItemRepository) ListLowStock(_ context.Context) ([]*entity.Item, error) {
	return r.filter(func(it entity.Item) bool { return it.IsLowStock() }), nil
}

func (r *ItemRepository) Search(_ context.Context, keyword string) ([]*entity.Item, error) {
	return r.filter(func(it entity.Item) bool {
		return containsFold(it.Code, keyword) || containsFold(it.Name, keyword)
	}), nil
}

func (r *ItemRepository) Update(_ context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for id, it := range r.s.items {
		if id != item.ID && it.Code == item.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.items[item.ID] = *item
	r.j.record(func() {
		if _, ok := r.s.items[prev.ID]; ok {
			r.s.items[prev.ID] = prev
		}
	})
	return nil
}

func (r *ItemRepository) UpdateStock(_ context.Context, id int64, stock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	prevStock := it.CurrentStock
	it.CurrentStock = stock
	r.s.items[id] = it
	r.j.record(func() {
		if cur, ok := r.s.items[id]; ok {
			cur.CurrentStock = prevStock
			r.s.items[id] = cur
		}
	})
	return nil
}

// Delete falla con domain.ErrConflict si el ítem está referenciado por proyectos o transacciones.
func (r *ItemRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	prev, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	for _, pi := range r.s.projectItems {
		if pi.ItemID == id {
			return domain.ErrConflict
		}
	}
	for _, t := range r.s.transactions {
		if t.ItemID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.items, id)
	r.j.record(func() { r.s.items[id] = prev })
	return nil
}
