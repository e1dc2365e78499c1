package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

// BuildInventoryStatus totaliza ítems, stock y valor (stock × precio unitario).
func BuildInventoryStatus(items []*entity.Item, now time.Time) *dto.InventoryStatusReport {
	r := &dto.InventoryStatusReport{
		TotalItems:    len(items),
		TotalValue:    decimal.Zero,
		InventoryList: dto.ToItemResponses(items),
		LowStockList:  []dto.ItemResponse{},
		GeneratedAt:   now,
	}
	for _, it := range items {
		r.TotalStock += it.CurrentStock
		r.TotalValue = r.TotalValue.Add(it.StockValue())
		if it.IsLowStock() {
			r.LowStockItems++
			r.LowStockList = append(r.LowStockList, dto.ToItemResponse(it))
		}
	}
	return r
}

// BuildProjectSummary cuenta proyectos por estado; todos los estados aparecen aunque estén en cero.
func BuildProjectSummary(projects []*entity.Project, now time.Time) *dto.ProjectSummaryReport {
	counts := make(map[string]int, len(entity.ProjectStatuses))
	for _, st := range entity.ProjectStatuses {
		counts[st] = 0
	}
	for _, p := range projects {
		counts[p.Status]++
	}
	return &dto.ProjectSummaryReport{
		TotalProjects: len(projects),
		StatusCounts:  counts,
		Projects:      dto.ToProjectResponses(projects),
		GeneratedAt:   now,
	}
}

// BuildTransactionHistory totaliza entradas y salidas.
func BuildTransactionHistory(txs []*entity.Transaction, now time.Time) *dto.TransactionHistoryReport {
	r := &dto.TransactionHistoryReport{
		TotalTransactions: len(txs),
		Transactions:      dto.ToTransactionResponses(txs),
		GeneratedAt:       now,
	}
	for _, t := range txs {
		switch t.Type {
		case entity.TransactionTypeIN:
			r.InTransactions++
			r.TotalInQuantity += t.Quantity
		case entity.TransactionTypeOUT:
			r.OutTransactions++
			r.TotalOutQuantity += t.Quantity
		}
	}
	return r
}
