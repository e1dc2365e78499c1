package inventory

import (
	"context"

	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
	) error) error
}

// StockAlerter genera la notificación de stock bajo tras un movimiento.
type StockAlerter interface {
	NotifyLowStock(ctx context.Context, item *entity.Item) error
}
