package inventory_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/application/inventory"
	"github.com/jhoicas/inventario-proyectos/internal/application/usecase"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/infrastructure/memory"
)

type fixture struct {
	items    *memory.ItemRepository
	projects *memory.ProjectRepository
	notif    *usecase.NotificationUseCase
	uc       *inventory.TransactionUseCase
}

func newFixture() fixture {
	store := memory.NewStore()
	notif := usecase.NewNotificationUseCase(memory.NewNotificationRepository(store))
	projects := memory.NewProjectRepository(store)
	return fixture{
		items:    memory.NewItemRepository(store),
		projects: projects,
		notif:    notif,
		uc: inventory.NewTransactionUseCase(
			memory.NewTxRunner(store),
			memory.NewTransactionRepository(store),
			projects,
			notif,
			zerolog.Nop(),
		),
	}
}

func (f fixture) item(t *testing.T, code string, stock, min int) *entity.Item {
	t.Helper()
	it := &entity.Item{Code: code, Name: "Ítem " + code, Unit: "EA", CurrentStock: stock, MinStock: min}
	require.NoError(t, f.items.Create(context.Background(), it))
	return it
}

func TestRegisterTransaction_EntradaSumaStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	it := f.item(t, "A", 5, 0)

	out, err := f.uc.RegisterTransaction(ctx, inventory.TransactionInput{ItemID: it.ID, Type: entity.TransactionTypeIN, Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, "A", out.ItemCode)
	assert.True(t, strings.HasPrefix(out.ReferenceNo, "TX-"))
	assert.Len(t, out.ReferenceNo, 11)

	got, err := f.items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.CurrentStock)
}

func TestRegisterTransaction_EntradaFueraDeRango(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	it := f.item(t, "A", entity.MaxStock-5, 0)

	_, err := f.uc.RegisterTransaction(ctx, inventory.TransactionInput{ItemID: it.ID, Type: entity.TransactionTypeIN, Quantity: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := f.items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxStock-5, got.CurrentStock, "no se persiste el movimiento")

	_, err = f.uc.RegisterTransaction(ctx, inventory.TransactionInput{ItemID: it.ID, Type: entity.TransactionTypeOUT, Quantity: entity.MaxStock + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.RegisterTransaction(ctx, inventory.TransactionInput{
		ItemID: it.ID, Type: entity.TransactionTypeOUT, Quantity: 1, ReferenceNo: strings.Repeat("R", entity.MaxReferenceLen+1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterTransaction_SalidaInsuficienteNoPersiste(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	it := f.item(t, "A", 3, 0)

	_, err := f.uc.RegisterTransaction(ctx, inventory.TransactionInput{ItemID: it.ID, Type: entity.TransactionTypeOUT, Quantity: 4})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, err := f.items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentStock)

	hist, err := f.uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestRegisterTransaction_SalidaExactaDejaCeroYAlerta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	it := f.item(t, "A", 3, 1)

	_, err := f.uc.RegisterTransaction(ctx, inventory.TransactionInput{ItemID: it.ID, Type: entity.TransactionTypeOUT, Quantity: 3, ReferenceNo: "OC-77"})
	require.NoError(t, err)

	got, err := f.items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Zero(t, got.CurrentStock)

	count, err := f.notif.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	hist, err := f.uc.ListByItem(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "OC-77", hist[0].ReferenceNo)
}

func TestRegisterTransaction_Validaciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	it := f.item(t, "A", 3, 0)

	_, err := f.uc.RegisterTransaction(ctx, inventory.TransactionInput{ItemID: it.ID, Type: "ADJUST", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.RegisterTransaction(ctx, inventory.TransactionInput{ItemID: it.ID, Type: entity.TransactionTypeIN, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.RegisterTransaction(ctx, inventory.TransactionInput{ItemID: 404, Type: entity.TransactionTypeIN, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	missing := int64(88)
	_, err = f.uc.RegisterTransaction(ctx, inventory.TransactionInput{ItemID: it.ID, Type: entity.TransactionTypeIN, Quantity: 1, ProjectID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterTransaction_ImputadaAProyecto(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	it := f.item(t, "A", 10, 0)
	p := &entity.Project{Code: "P1", Name: "Tablero eléctrico", Status: entity.ProjectStatusInProgress}
	require.NoError(t, f.projects.Create(ctx, p))

	when := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	in := inventory.FromRequest(dto.TransactionRequest{
		InventoryID:     it.ID,
		TransactionType: "out",
		Quantity:        2,
		ProjectID:       &p.ID,
		TransactionDate: &when,
	}, "user-1")
	assert.Equal(t, "user-1", in.CreatedBy)

	out, err := f.uc.RegisterTransaction(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Tablero eléctrico", out.ProjectName)
	assert.Equal(t, when, out.TransactionDate)

	byProject, err := f.uc.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 1)

	_, err = f.uc.ListByDateRange(ctx, when, when.Add(-time.Hour))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReplenishment_OrdenaPorDeficitRelativo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := &entity.Item{Code: "A", Name: "A", Unit: "EA", CurrentStock: 8, MinStock: 10, UnitPrice: decimal.NewFromInt(100)}
	b := &entity.Item{Code: "B", Name: "B", Unit: "EA", CurrentStock: 0, MinStock: 3, UnitPrice: decimal.RequireFromString("2.5")}
	c := &entity.Item{Code: "C", Name: "C", Unit: "EA", CurrentStock: 50, MinStock: 10}
	for _, it := range []*entity.Item{a, b, c} {
		require.NoError(t, f.items.Create(ctx, it))
	}

	list, err := inventory.NewReplenishmentUseCase(f.items).GenerateReplenishmentList(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "B", list[0].ItemCode)
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, 5, list[0].IdealStock)
	assert.Equal(t, 5, list[0].SuggestedOrderQty)
	assert.True(t, decimal.RequireFromString("12.5").Equal(list[0].EstimatedCost))

	assert.Equal(t, "A", list[1].ItemCode)
	assert.Equal(t, 15, list[1].IdealStock)
	assert.Equal(t, 7, list[1].SuggestedOrderQty)
}
