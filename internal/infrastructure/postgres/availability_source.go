package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appavailability "github.com/jhoicas/inventario-proyectos/internal/application/availability"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/availability"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

var (
	_ appavailability.Source         = (*AvailabilitySource)(nil)
	_ appavailability.SnapshotLoader = (*AvailabilitySource)(nil)
)

// AvailabilitySource lee proyecto, requerimientos e inventario. LoadSnapshot hace las tres
// lecturas en una sola transacción REPEATABLE READ; los métodos sueltos usan el pool.
type AvailabilitySource struct {
	pool   *pgxpool.Pool
	runner *TxRunner
}

// NewAvailabilitySource construye la fuente.
func NewAvailabilitySource(pool *pgxpool.Pool) *AvailabilitySource {
	return &AvailabilitySource{pool: pool, runner: NewTxRunner(pool)}
}

func (s *AvailabilitySource) GetProject(ctx context.Context, projectID int64) (*entity.Project, error) {
	return getProject(ctx, s.pool, projectID)
}

func (s *AvailabilitySource) ListRequirements(ctx context.Context, projectID int64) ([]availability.Requirement, error) {
	return listRequirements(ctx, s.pool, projectID)
}

func (s *AvailabilitySource) ListStock(ctx context.Context) ([]availability.StockLevel, error) {
	return listStock(ctx, s.pool)
}

// LoadSnapshot lee las tres entradas dentro de la misma transacción. Las consultas van en serie:
// una conexión no admite consultas concurrentes.
func (s *AvailabilitySource) LoadSnapshot(ctx context.Context, projectID int64) (*appavailability.Snapshot, error) {
	var snap appavailability.Snapshot
	err := s.runner.ReadSnapshot(ctx, func(q Querier) error {
		p, err := getProject(ctx, q, projectID)
		if err != nil {
			return err
		}
		snap.Project = p
		if snap.Requirements, err = listRequirements(ctx, q, projectID); err != nil {
			return err
		}
		snap.Stock, err = listStock(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func getProject(ctx context.Context, q Querier, projectID int64) (*entity.Project, error) {
	p, err := NewProjectRepository(q).GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func listRequirements(ctx context.Context, q Querier, projectID int64) ([]availability.Requirement, error) {
	rows, err := q.Query(ctx, `
		SELECT inventory_id, required_quantity FROM project_items
		WHERE project_id = $1 ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()
	out := make([]availability.Requirement, 0)
	for rows.Next() {
		var r availability.Requirement
		if err := rows.Scan(&r.ItemID, &r.RequiredQuantity); err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func listStock(ctx context.Context, q Querier) ([]availability.StockLevel, error) {
	rows, err := q.Query(ctx, `SELECT id, item_code, item_name, current_stock FROM inventory ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	out := make([]availability.StockLevel, 0)
	for rows.Next() {
		var l availability.StockLevel
		if err := rows.Scan(&l.ItemID, &l.ItemCode, &l.ItemName, &l.CurrentStock); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
