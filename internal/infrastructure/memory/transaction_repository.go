package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// TransactionRepository historial de movimientos en memoria.
type TransactionRepository struct {
	s *Store
	j *journal
}

// NewTransactionRepository construye el repositorio sobre el almacén.
func NewTransactionRepository(s *Store) *TransactionRepository {
	return &TransactionRepository{s: s}
}

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) Create(_ context.Context, t *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[t.ItemID]; !ok {
		return domain.ErrNotFound
	}
	t.ID = r.s.nextID("inventory_transactions")
	r.s.transactions[t.ID] = *t
	id := t.ID
	r.j.record(func() { delete(r.s.transactions, id) })
	return nil
}

// filter completa código/nombre del ítem y nombre del proyecto como lo haría el JOIN.
func (r *TransactionRepository) filter(keep func(entity.Transaction) bool) []*entity.Transaction {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Transaction, 0)
	for _, t := range r.s.transactions {
		if !keep(t) {
			continue
		}
		tx := t
		if it, ok := r.s.items[tx.ItemID]; ok {
			tx.ItemCode, tx.ItemName = it.Code, it.Name
		}
		tx.ProjectName = ""
		if tx.ProjectID != nil {
			if p, ok := r.s.projects[*tx.ProjectID]; ok {
				tx.ProjectName = p.Name
			}
		}
		out = append(out, &tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TransactionDate.Equal(out[j].TransactionDate) {
			return out[i].TransactionDate.After(out[j].TransactionDate)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *TransactionRepository) List(_ context.Context) ([]*entity.Transaction, error) {
	return r.filter(func(entity.Transaction) bool { return true }), nil
}

func (r *TransactionRepository) ListByItem(_ context.Context, itemID int64) ([]*entity.Transaction, error) {
	return r.filter(func(t entity.Transaction) bool { return t.ItemID == itemID }), nil
}

func (r *TransactionRepository) ListByProject(_ context.Context, projectID int64) ([]*entity.Transaction, error) {
	return r.filter(func(t entity.Transaction) bool { return t.ProjectID != nil && *t.ProjectID == projectID }), nil
}

func (r *TransactionRepository) ListByDateRange(_ context.Context, from, to time.Time) ([]*entity.Transaction, error) {
	return r.filter(func(t entity.Transaction) bool {
		return !t.TransactionDate.Before(from) && !t.TransactionDate.After(to)
	}), nil
}
