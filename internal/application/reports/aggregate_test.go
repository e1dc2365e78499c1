package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/application/reports"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/infrastructure/memory"
)

var now = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

func TestBuildInventoryStatus(t *testing.T) {
	items := []*entity.Item{
		{ID: 1, Code: "A", CurrentStock: 10, MinStock: 2, UnitPrice: decimal.RequireFromString("1.50")},
		{ID: 2, Code: "B", CurrentStock: 1, MinStock: 5, UnitPrice: decimal.NewFromInt(20)},
		{ID: 3, Code: "C", CurrentStock: 0, MinStock: 0},
	}
	r := reports.BuildInventoryStatus(items, now)

	assert.Equal(t, 3, r.TotalItems)
	assert.Equal(t, 11, r.TotalStock)
	assert.Equal(t, 1, r.LowStockItems)
	require.Len(t, r.LowStockList, 1)
	assert.Equal(t, "B", r.LowStockList[0].ItemCode)
	assert.True(t, decimal.NewFromInt(35).Equal(r.TotalValue))
	assert.Len(t, r.InventoryList, 3)
}

func TestBuildProjectSummary_TodosLosEstados(t *testing.T) {
	r := reports.BuildProjectSummary([]*entity.Project{
		{ID: 1, Status: entity.ProjectStatusInProgress},
		{ID: 2, Status: entity.ProjectStatusInProgress},
		{ID: 3, Status: entity.ProjectStatusCompleted},
	}, now)

	assert.Equal(t, 3, r.TotalProjects)
	assert.Len(t, r.StatusCounts, 4)
	assert.Equal(t, 0, r.StatusCounts[entity.ProjectStatusPending])
	assert.Equal(t, 2, r.StatusCounts[entity.ProjectStatusInProgress])
	assert.Equal(t, 1, r.StatusCounts[entity.ProjectStatusCompleted])
	assert.Equal(t, 0, r.StatusCounts[entity.ProjectStatusCancelled])
}

func TestBuildProjectSummary_SinProyectos(t *testing.T) {
	r := reports.BuildProjectSummary(nil, now)
	assert.Zero(t, r.TotalProjects)
	assert.Len(t, r.StatusCounts, 4)
	assert.NotNil(t, r.Projects)
}

func TestBuildTransactionHistory(t *testing.T) {
	r := reports.BuildTransactionHistory([]*entity.Transaction{
		{ID: 1, Type: entity.TransactionTypeIN, Quantity: 10},
		{ID: 2, Type: entity.TransactionTypeOUT, Quantity: 3},
		{ID: 3, Type: entity.TransactionTypeOUT, Quantity: 4},
	}, now)

	assert.Equal(t, 3, r.TotalTransactions)
	assert.Equal(t, 1, r.InTransactions)
	assert.Equal(t, 2, r.OutTransactions)
	assert.Equal(t, 10, r.TotalInQuantity)
	assert.Equal(t, 7, r.TotalOutQuantity)
}

type fakeRenderer struct {
	kind string
}

func (f *fakeRenderer) InventoryStatusPDF(context.Context, *dto.InventoryStatusReport) ([]byte, error) {
	f.kind = reports.KindInventoryStatus
	return []byte("%PDF-inv"), nil
}

func (f *fakeRenderer) ProjectSummaryPDF(context.Context, *dto.ProjectSummaryReport) ([]byte, error) {
	f.kind = reports.KindProjectSummary
	return []byte("%PDF-proj"), nil
}

func (f *fakeRenderer) TransactionHistoryPDF(context.Context, *dto.TransactionHistoryReport) ([]byte, error) {
	f.kind = reports.KindTransactionHistory
	return []byte("%PDF-tx"), nil
}

func (f *fakeRenderer) AvailabilityPDF(context.Context, *dto.ProjectAvailabilityResponse) ([]byte, error) {
	f.kind = "availability"
	return []byte("%PDF-av"), nil
}

func TestUseCase_PDFPorTipo(t *testing.T) {
	store := memory.NewStore()
	renderer := &fakeRenderer{}
	uc := reports.NewUseCase(
		memory.NewItemRepository(store),
		memory.NewProjectRepository(store),
		memory.NewTransactionRepository(store),
		nil,
		renderer,
	)
	ctx := context.Background()

	doc, name, err := uc.PDF(ctx, reports.KindProjectSummary)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-proj"), doc)
	assert.Contains(t, name, "project-summary-")
	assert.Equal(t, reports.KindProjectSummary, renderer.kind)

	_, _, err = uc.PDF(ctx, "ventas")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUseCase_HistorialRangoIncompleto(t *testing.T) {
	store := memory.NewStore()
	uc := reports.NewUseCase(memory.NewItemRepository(store), memory.NewProjectRepository(store),
		memory.NewTransactionRepository(store), nil, &fakeRenderer{})

	from := now
	_, err := uc.TransactionHistory(context.Background(), &from, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	r, err := uc.TransactionHistory(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Zero(t, r.TotalTransactions)
	assert.NotNil(t, r.Transactions)
}
