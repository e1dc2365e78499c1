package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo historial de movimientos (tabla inventory_transactions).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	query := `
		INSERT INTO inventory_transactions (inventory_id, transaction_type, quantity, project_id, reference_no, transaction_date, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		t.ItemID, t.Type, t.Quantity, nullableID(t.ProjectID), t.ReferenceNo, t.TransactionDate, t.Notes, t.CreatedBy, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

const transactionSelect = `
	SELECT t.id, t.inventory_id, t.transaction_type, t.quantity, t.project_id, t.reference_no,
		t.transaction_date, t.notes, t.created_by, t.created_at,
		i.item_code, i.item_name, COALESCE(p.project_name, '')
	FROM inventory_transactions t
	JOIN inventory i ON i.id = t.inventory_id
	LEFT JOIN projects p ON p.id = t.project_id`

const transactionOrder = ` ORDER BY t.transaction_date DESC, t.id DESC`

func (r *TransactionRepo) list(ctx context.Context, where string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, transactionSelect+where+transactionOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.Transaction, 0)
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.ItemID, &t.Type, &t.Quantity, &t.ProjectID, &t.ReferenceNo,
			&t.TransactionDate, &t.Notes, &t.CreatedBy, &t.CreatedAt,
			&t.ItemCode, &t.ItemName, &t.ProjectName,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *TransactionRepo) List(ctx context.Context) ([]*entity.Transaction, error) {
	return r.list(ctx, "")
}

func (r *TransactionRepo) ListByItem(ctx context.Context, itemID int64) ([]*entity.Transaction, error) {
	return r.list(ctx, ` WHERE t.inventory_id = $1`, itemID)
}

func (r *TransactionRepo) ListByProject(ctx context.Context, projectID int64) ([]*entity.Transaction, error) {
	return r.list(ctx, ` WHERE t.project_id = $1`, projectID)
}

func (r *TransactionRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Transaction, error) {
	return r.list(ctx, ` WHERE t.transaction_date BETWEEN $1 AND $2`, from, to)
}
