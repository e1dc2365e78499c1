package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición a partir de los ítems bajo el mínimo.
type ReplenishmentUseCase struct {
	itemRepo repository.ItemRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(itemRepo repository.ItemRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{itemRepo: itemRepo}
}

// GenerateReplenishmentList devuelve los ítems con stock bajo, la cantidad sugerida para llegar
// al stock ideal (1.5 × mínimo, redondeado hacia arriba) y el costo estimado del pedido.
// Prioridad 1 = mayor déficit relativo al mínimo.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestion, error) {
	items, err := uc.itemRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	factor := decimal.NewFromFloat(1.5)
	out := make([]dto.ReplenishmentSuggestion, 0, len(items))
	for _, it := range items {
		ideal := int(decimal.NewFromInt(int64(it.MinStock)).Mul(factor).Ceil().IntPart())
		qty := ideal - it.CurrentStock
		if qty < 0 {
			qty = 0
		}
		out = append(out, dto.ReplenishmentSuggestion{
			ItemID:            it.ID,
			ItemCode:          it.Code,
			ItemName:          it.Name,
			CurrentStock:      it.CurrentStock,
			MinStock:          it.MinStock,
			IdealStock:        ideal,
			SuggestedOrderQty: qty,
			UnitPrice:         it.UnitPrice,
			EstimatedCost:     it.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	// Déficit relativo: (min - actual) / min. Desempate por déficit absoluto y luego por código.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ra := decimal.NewFromInt(int64(a.MinStock - a.CurrentStock)).Div(decimal.NewFromInt(int64(a.MinStock)))
		rb := decimal.NewFromInt(int64(b.MinStock - b.CurrentStock)).Div(decimal.NewFromInt(int64(b.MinStock)))
		if !ra.Equal(rb) {
			return ra.GreaterThan(rb)
		}
		da, db := a.MinStock-a.CurrentStock, b.MinStock-b.CurrentStock
		if da != db {
			return da > db
		}
		return a.ItemCode < b.ItemCode
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
