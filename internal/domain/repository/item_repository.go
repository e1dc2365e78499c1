package repository

import (
	"context"

	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para ítems de inventario (DIP).
// GetByID y GetByCode devuelven (nil, nil) si no existe.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de una transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Item, error)
	ListLowStock(ctx context.Context) ([]*entity.Item, error)
	Search(ctx context.Context, keyword string) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	UpdateStock(ctx context.Context, id int64, stock int) error
	// Delete devuelve domain.ErrNotFound si no había fila.
	Delete(ctx context.Context, id int64) error
}
