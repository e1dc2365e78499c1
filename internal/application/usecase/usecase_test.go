package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/application/usecase"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/availability"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/infrastructure/memory"
)

func intPtr(v int) *int { return &v }

func itemReq(code string, stock, min int) dto.ItemRequest {
	return dto.ItemRequest{ItemCode: code, ItemName: "Ítem " + code, Unit: "EA", CurrentStock: intPtr(stock), MinStock: min}
}

type fixture struct {
	store         *memory.Store
	items         *usecase.ItemUseCase
	projects      *usecase.ProjectUseCase
	notifications *usecase.NotificationUseCase
}

func newFixture(checker usecase.ShortageChecker) fixture {
	store := memory.NewStore()
	notif := usecase.NewNotificationUseCase(memory.NewNotificationRepository(store))
	itemRepo := memory.NewItemRepository(store)
	return fixture{
		store:         store,
		items:         usecase.NewItemUseCase(itemRepo, notif, zerolog.Nop()),
		projects:      usecase.NewProjectUseCase(memory.NewProjectRepository(store), memory.NewProjectItemRepository(store), itemRepo, checker, zerolog.Nop()),
		notifications: notif,
	}
}

func TestItemUseCase_CreateValidaCampos(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	_, err := f.items.Create(ctx, dto.ItemRequest{ItemCode: "", ItemName: "x", Unit: "EA", CurrentStock: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.items.Create(ctx, itemReq("A", -1, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	neg := decimal.NewFromInt(-1)
	req := itemReq("A", 1, 0)
	req.UnitPrice = &neg
	_, err = f.items.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemUseCase_CreateLimitesDeColumnas(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	_, err := f.items.Create(ctx, itemReq(strings.Repeat("C", entity.MaxItemCodeLen+1), 1, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	long := itemReq("N-1", 1, 0)
	long.ItemName = strings.Repeat("ñ", entity.MaxItemNameLen+1)
	_, err = f.items.Create(ctx, long)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.items.Create(ctx, itemReq("S-1", entity.MaxStock+1, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	huge := decimal.New(1, 13)
	pricey := itemReq("P-1", 1, 0)
	pricey.UnitPrice = &huge
	_, err = f.items.Create(ctx, pricey)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Multibyte: 200 caracteres entran aunque ocupen más bytes.
	ok := itemReq(strings.Repeat("C", entity.MaxItemCodeLen), 1, 0)
	ok.ItemName = strings.Repeat("ñ", entity.MaxItemNameLen)
	_, err = f.items.Create(ctx, ok)
	assert.NoError(t, err)
}

func TestItemUseCase_CreateDuplicado(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	out, err := f.items.Create(ctx, itemReq("A", 10, 2))
	require.NoError(t, err)
	assert.Equal(t, "A", out.ItemCode)
	assert.False(t, out.LowStock)

	_, err = f.items.Create(ctx, itemReq("A", 1, 0))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemUseCase_StockBajoNotificaUnaSolaVez(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	out, err := f.items.Create(ctx, itemReq("A", 1, 5))
	require.NoError(t, err)
	assert.True(t, out.LowStock)

	_, err = f.items.Update(ctx, out.ID, itemReq("A", 2, 5))
	require.NoError(t, err)

	list, err := f.notifications.ListUnread(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.NotificationLowStock, list[0].Type)
	require.NotNil(t, list[0].RelatedID)
	assert.Equal(t, out.ID, *list[0].RelatedID)

	// leída la anterior, una nueva baja vuelve a notificar
	_, err = f.notifications.MarkAsRead(ctx, list[0].ID)
	require.NoError(t, err)
	_, err = f.items.Update(ctx, out.ID, itemReq("A", 1, 5))
	require.NoError(t, err)
	count, err := f.notifications.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestItemUseCase_UpdateCodigoDeOtroItem(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	_, err := f.items.Create(ctx, itemReq("A", 1, 0))
	require.NoError(t, err)
	b, err := f.items.Create(ctx, itemReq("B", 1, 0))
	require.NoError(t, err)

	_, err = f.items.Update(ctx, b.ID, itemReq("A", 1, 0))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.items.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func projectReq(code, status string) dto.ProjectRequest {
	return dto.ProjectRequest{ProjectCode: code, ProjectName: "Proyecto " + code, Status: status}
}

func TestProjectUseCase_CreateValidaEstadoYFechas(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	_, err := f.projects.Create(ctx, projectReq("P1", "OPEN"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req := projectReq("P1", entity.ProjectStatusPending)
	start, end := "2024-05-10", "2024-05-01"
	req.StartDate, req.EndDate = &start, &end
	_, err = f.projects.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad := "10/05/2024"
	req.StartDate, req.EndDate = &bad, nil
	_, err = f.projects.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req.StartDate = &start
	out, err := f.projects.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, out.StartDate)
	assert.Equal(t, "2024-05-10", *out.StartDate)

	_, err = f.projects.Create(ctx, projectReq("P1", entity.ProjectStatusPending))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

type fakeChecker struct {
	calls []int64
}

func (f *fakeChecker) CheckAndNotify(_ context.Context, projectID int64) (*dto.ProjectAvailabilityResponse, error) {
	f.calls = append(f.calls, projectID)
	return &dto.ProjectAvailabilityResponse{ProjectID: projectID}, nil
}

func TestProjectUseCase_AddItemVerificaDisponibilidad(t *testing.T) {
	checker := &fakeChecker{}
	f := newFixture(checker)
	ctx := context.Background()

	item, err := f.items.Create(ctx, itemReq("A", 4, 0))
	require.NoError(t, err)
	p, err := f.projects.Create(ctx, projectReq("P1", entity.ProjectStatusInProgress))
	require.NoError(t, err)

	pi, err := f.projects.AddItem(ctx, p.ID, dto.ProjectItemRequest{InventoryID: item.ID, RequiredQuantity: 10})
	require.NoError(t, err)
	assert.Equal(t, item.ID, pi.ItemID)
	assert.Equal(t, "A", pi.Inventory.ItemCode)
	assert.Equal(t, []int64{p.ID}, checker.calls)

	list, err := f.projects.ListItems(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 10, list[0].RequiredQuantity)
}

func TestProjectUseCase_AddItemErrores(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	p, err := f.projects.Create(ctx, projectReq("P1", entity.ProjectStatusPending))
	require.NoError(t, err)

	_, err = f.projects.AddItem(ctx, p.ID, dto.ProjectItemRequest{InventoryID: 1, RequiredQuantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.projects.AddItem(ctx, p.ID, dto.ProjectItemRequest{InventoryID: 42, RequiredQuantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.projects.AddItem(ctx, 999, dto.ProjectItemRequest{InventoryID: 1, RequiredQuantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNotificationUseCase_FaltanteDeProyecto(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	err := f.notifications.NotifyProjectShortage(ctx, 3, "Tablero", []availability.ItemAvailability{
		{ItemID: 1, ItemCode: "A", ItemName: "Ítem A", RequiredQuantity: 5, AvailableStock: 5, IsAvailable: true},
	})
	require.NoError(t, err)
	count, err := f.notifications.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "sin faltantes no se notifica")

	err = f.notifications.NotifyProjectShortage(ctx, 3, "Tablero", []availability.ItemAvailability{
		{ItemID: 2, ItemCode: "B", ItemName: "Ítem B", RequiredQuantity: 10, AvailableStock: 4, Shortfall: 6},
	})
	require.NoError(t, err)

	list, err := f.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.NotificationProjectShortage, list[0].Type)
	assert.Contains(t, list[0].Message, "[B] Ítem B")
	assert.Contains(t, list[0].Message, "faltan 6")
}

func TestNotificationUseCase_MarkAsReadNoExiste(t *testing.T) {
	f := newFixture(nil)
	_, err := f.notifications.MarkAsRead(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
