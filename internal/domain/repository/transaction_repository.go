package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

// TransactionRepository historial de entradas y salidas. Listados ordenados por fecha desc.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	List(ctx context.Context) ([]*entity.Transaction, error)
	ListByItem(ctx context.Context, itemID int64) ([]*entity.Transaction, error)
	ListByProject(ctx context.Context, projectID int64) ([]*entity.Transaction, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Transaction, error)
}
