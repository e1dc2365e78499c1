package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/infrastructure/memory"
)

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	projects := memory.NewProjectRepository(store)
	txs := memory.NewTransactionRepository(store)
	notifs := memory.NewNotificationRepository(store)

	cable := &entity.Item{Code: "CAB", Name: "Cable", Unit: "M", CurrentStock: 100, MinStock: 10, UnitPrice: decimal.RequireFromString("1.50")}
	sw := &entity.Item{Code: "SW", Name: "Switch", Unit: "EA", CurrentStock: 1, MinStock: 3, UnitPrice: decimal.NewFromInt(200)}
	require.NoError(t, items.Create(ctx, cable))
	require.NoError(t, items.Create(ctx, sw))

	require.NoError(t, projects.Create(ctx, &entity.Project{Code: "P1", Name: "Norte", Status: entity.ProjectStatusInProgress}))
	require.NoError(t, projects.Create(ctx, &entity.Project{Code: "P2", Name: "Sur", Status: entity.ProjectStatusPending}))

	now := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
	add := func(itemID int64, typ string, qty int, at time.Time) {
		require.NoError(t, txs.Create(ctx, &entity.Transaction{ItemID: itemID, Type: typ, Quantity: qty, TransactionDate: at}))
	}
	add(cable.ID, entity.TransactionTypeIN, 50, now.Add(-time.Hour))
	add(cable.ID, entity.TransactionTypeOUT, 20, now.Add(-2*time.Hour))
	add(sw.ID, entity.TransactionTypeOUT, 20, now.AddDate(0, 0, -3))
	add(cable.ID, entity.TransactionTypeOUT, 5, now.AddDate(0, 0, -5))
	// mes anterior: fuera del rango
	add(cable.ID, entity.TransactionTypeOUT, 99, time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC))

	require.NoError(t, notifs.Create(ctx, &entity.Notification{Type: entity.NotificationLowStock, Title: "x"}))

	uc := NewDashboardUseCase(items, projects, txs, notifs)
	uc.now = func() time.Time { return now }

	out, err := uc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalItems)
	assert.Equal(t, 1, out.LowStockItems)
	assert.True(t, decimal.NewFromInt(350).Equal(out.InventoryValue), "150 + 200")
	assert.Equal(t, 1, out.ProjectsInProgress)
	assert.Equal(t, int64(1), out.UnreadAlerts)
	assert.Equal(t, 50, out.TodayIn)
	assert.Equal(t, 20, out.TodayOut)
	assert.Equal(t, 50, out.MonthlyIn)
	assert.Equal(t, 45, out.MonthlyOut)
	assert.Equal(t, "Febrero 2026", out.DateLabel)

	require.Len(t, out.TopConsumed, 2)
	assert.Equal(t, "CAB", out.TopConsumed[0].ItemCode, "25 u. de cable en el mes")
	assert.Equal(t, 25, out.TopConsumed[0].QuantityOut)
	assert.Equal(t, "SW", out.TopConsumed[1].ItemCode)
}

func TestTopConsumed_LimiteYDesempate(t *testing.T) {
	m := map[int64]*dto.TopConsumedDTO{
		1: {ItemID: 1, ItemCode: "B", QuantityOut: 5},
		2: {ItemID: 2, ItemCode: "A", QuantityOut: 5},
		3: {ItemID: 3, ItemCode: "C", QuantityOut: 9},
	}
	out := topConsumed(m, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "C", out[0].ItemCode)
	assert.Equal(t, "A", out[1].ItemCode)
}
