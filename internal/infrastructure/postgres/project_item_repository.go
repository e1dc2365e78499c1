package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

var _ repository.ProjectItemRepository = (*ProjectItemRepo)(nil)

// ProjectItemRepo componentes requeridos por proyecto (tabla project_items).
type ProjectItemRepo struct {
	q Querier
}

// NewProjectItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectItemRepository(q Querier) *ProjectItemRepo {
	return &ProjectItemRepo{q: q}
}

func (r *ProjectItemRepo) Create(ctx context.Context, pi *entity.ProjectItem) error {
	query := `
		INSERT INTO project_items (project_id, inventory_id, required_quantity, allocated_quantity, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		pi.ProjectID, pi.ItemID, pi.RequiredQuantity, pi.AllocatedQuantity, pi.Notes, pi.CreatedAt,
	).Scan(&pi.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert project item: %w", err)
	}
	return nil
}

// ListByProject devuelve los componentes con el ítem cargado, en orden de alta.
func (r *ProjectItemRepo) ListByProject(ctx context.Context, projectID int64) ([]*entity.ProjectItem, error) {
	query := `
		SELECT pi.id, pi.project_id, pi.inventory_id, pi.required_quantity, pi.allocated_quantity, pi.notes, pi.created_at,
			i.id, i.item_code, i.item_name, i.category, i.unit, i.current_stock, i.min_stock, i.unit_price, i.location, i.created_at, i.updated_at
		FROM project_items pi
		JOIN inventory i ON i.id = pi.inventory_id
		WHERE pi.project_id = $1
		ORDER BY pi.id`
	rows, err := r.q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project items: %w", err)
	}
	defer rows.Close()
	out := make([]*entity.ProjectItem, 0)
	for rows.Next() {
		var (
			pi entity.ProjectItem
			it entity.Item
		)
		if err := rows.Scan(&pi.ID, &pi.ProjectID, &pi.ItemID, &pi.RequiredQuantity, &pi.AllocatedQuantity, &pi.Notes, &pi.CreatedAt,
			&it.ID, &it.Code, &it.Name, &it.Category, &it.Unit, &it.CurrentStock, &it.MinStock, &it.UnitPrice, &it.Location, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project item: %w", err)
		}
		pi.Item = &it
		out = append(out, &pi)
	}
	return out, rows.Err()
}

func (r *ProjectItemRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM project_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
