// Package analytics contiene el resumen del dashboard de inventario y proyectos.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

const dashboardTopConsumed = 5 // número de ítems en el widget de consumo

// DashboardUseCase genera el resumen del día y del mes en curso.
// Solo lecturas; delega todo en los repositorios.
type DashboardUseCase struct {
	items         repository.ItemRepository
	projects      repository.ProjectRepository
	transactions  repository.TransactionRepository
	notifications repository.NotificationRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	items repository.ItemRepository,
	projects repository.ProjectRepository,
	transactions repository.TransactionRepository,
	notifications repository.NotificationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		items:         items,
		projects:      projects,
		transactions:  transactions,
		notifications: notifications,
		now:           time.Now,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. items.List                           → totales de inventario
//  2. projects.ListByStatus(IN_PROGRESS)   → proyectos en curso
//  3. transactions.ListByDateRange(mes)    → movimientos de hoy y del mes, top consumo
//  4. notifications.CountUnread            → alertas pendientes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type itemsResult struct {
		items []*entity.Item
		err   error
	}
	type projectsResult struct {
		projects []*entity.Project
		err      error
	}
	type txResult struct {
		txs []*entity.Transaction
		err error
	}
	type countResult struct {
		n   int64
		err error
	}

	itemsCh := make(chan itemsResult, 1)
	projectsCh := make(chan projectsResult, 1)
	txCh := make(chan txResult, 1)
	unreadCh := make(chan countResult, 1)

	go func() {
		items, err := uc.items.List(ctx)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		projects, err := uc.projects.ListByStatus(ctx, entity.ProjectStatusInProgress)
		projectsCh <- projectsResult{projects, err}
	}()
	go func() {
		txs, err := uc.transactions.ListByDateRange(ctx, monthStart, todayEnd)
		txCh <- txResult{txs, err}
	}()
	go func() {
		n, err := uc.notifications.CountUnread(ctx)
		unreadCh <- countResult{n, err}
	}()

	items := <-itemsCh
	projects := <-projectsCh
	txs := <-txCh
	unread := <-unreadCh

	if items.err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", items.err)
	}
	if projects.err != nil {
		return nil, fmt.Errorf("dashboard: proyectos: %w", projects.err)
	}
	if txs.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos del mes: %w", txs.err)
	}
	if unread.err != nil {
		return nil, fmt.Errorf("dashboard: notificaciones: %w", unread.err)
	}

	out := &dto.DashboardSummaryDTO{
		TotalItems:         len(items.items),
		InventoryValue:     decimal.Zero,
		ProjectsInProgress: len(projects.projects),
		UnreadAlerts:       unread.n,
		DateLabel:          monthLabel(now),
	}
	for _, it := range items.items {
		if it.IsLowStock() {
			out.LowStockItems++
		}
		out.InventoryValue = out.InventoryValue.Add(it.StockValue())
	}
	out.InventoryValue = out.InventoryValue.Round(2)

	consumed := make(map[int64]*dto.TopConsumedDTO)
	for _, t := range txs.txs {
		today := !t.TransactionDate.Before(todayStart)
		switch t.Type {
		case entity.TransactionTypeIN:
			out.MonthlyIn += t.Quantity
			if today {
				out.TodayIn += t.Quantity
			}
		case entity.TransactionTypeOUT:
			out.MonthlyOut += t.Quantity
			if today {
				out.TodayOut += t.Quantity
			}
			c, ok := consumed[t.ItemID]
			if !ok {
				c = &dto.TopConsumedDTO{ItemID: t.ItemID, ItemCode: t.ItemCode, ItemName: t.ItemName}
				consumed[t.ItemID] = c
			}
			c.QuantityOut += t.Quantity
		}
	}
	out.TopConsumed = topConsumed(consumed, dashboardTopConsumed)
	return out, nil
}

// topConsumed ordena por cantidad despachada desc y, a igual cantidad, por código.
func topConsumed(m map[int64]*dto.TopConsumedDTO, n int) []dto.TopConsumedDTO {
	list := make([]dto.TopConsumedDTO, 0, len(m))
	for _, c := range m {
		list = append(list, *c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].QuantityOut != list[j].QuantityOut {
			return list[i].QuantityOut > list[j].QuantityOut
		}
		return list[i].ItemCode < list[j].ItemCode
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
