// Package availability orquesta la verificación de stock de un proyecto: obtiene el proyecto,
// sus requerimientos y el inventario, y delega el cálculo en domain/availability.
package availability

import (
	"context"

	"github.com/jhoicas/inventario-proyectos/internal/domain/availability"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

// Source provee las tres lecturas que necesita la conciliación. Cada método es independiente
// y puede llamarse en paralelo. GetProject devuelve domain.ErrNotFound si el proyecto no existe.
type Source interface {
	GetProject(ctx context.Context, projectID int64) (*entity.Project, error)
	ListRequirements(ctx context.Context, projectID int64) ([]availability.Requirement, error)
	ListStock(ctx context.Context) ([]availability.StockLevel, error)
}

// Snapshot entradas leídas en un mismo instante.
type Snapshot struct {
	Project      *entity.Project
	Requirements []availability.Requirement
	Stock        []availability.StockLevel
}

// SnapshotLoader lo implementan las fuentes capaces de leer las tres entradas de forma atómica
// (p. ej. una transacción REPEATABLE READ). Si la fuente lo implementa, se usa en lugar de las
// lecturas paralelas.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context, projectID int64) (*Snapshot, error)
}

// ShortageNotifier registra un aviso cuando el proyecto tiene faltantes.
type ShortageNotifier interface {
	NotifyProjectShortage(ctx context.Context, projectID int64, projectName string, items []availability.ItemAvailability) error
}
