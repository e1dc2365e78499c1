package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
	"github.com/jhoicas/inventario-proyectos/internal/infrastructure/memory"
)

func TestItemRepository_CodigoDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewItemRepository(memory.NewStore())

	require.NoError(t, repo.Create(ctx, &entity.Item{Code: "R-100", Name: "Resistor", Unit: "EA"}))
	err := repo.Create(ctx, &entity.Item{Code: "R-100", Name: "Otro", Unit: "EA"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestItemRepository_NoExisteDevuelveNil(t *testing.T) {
	repo := memory.NewItemRepository(memory.NewStore())
	it, err := repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, it)
}

func TestItemRepository_BusquedaYStockBajo(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewItemRepository(memory.NewStore())
	require.NoError(t, repo.Create(ctx, &entity.Item{Code: "CAP-1", Name: "Capacitor 10uF", Unit: "EA", CurrentStock: 2, MinStock: 5}))
	require.NoError(t, repo.Create(ctx, &entity.Item{Code: "RES-1", Name: "Resistor 1k", Unit: "EA", CurrentStock: 50, MinStock: 5}))

	found, err := repo.Search(ctx, "capa")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "CAP-1", found[0].Code)

	low, err := repo.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "CAP-1", low[0].Code)
}

func TestItemRepository_DeleteReferenciadoEsConflicto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	projects := memory.NewProjectRepository(store)
	pis := memory.NewProjectItemRepository(store)

	item := &entity.Item{Code: "A", Name: "A", Unit: "EA"}
	require.NoError(t, items.Create(ctx, item))
	p := &entity.Project{Code: "P1", Name: "Proyecto", Status: entity.ProjectStatusPending}
	require.NoError(t, projects.Create(ctx, p))
	require.NoError(t, pis.Create(ctx, &entity.ProjectItem{ProjectID: p.ID, ItemID: item.ID, RequiredQuantity: 1}))

	assert.ErrorIs(t, items.Delete(ctx, item.ID), domain.ErrConflict)
	assert.ErrorIs(t, items.Delete(ctx, 999), domain.ErrNotFound)
}

func TestProjectRepository_DeleteBorraComponentesYDesligaTransacciones(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	projects := memory.NewProjectRepository(store)
	pis := memory.NewProjectItemRepository(store)
	txs := memory.NewTransactionRepository(store)

	item := &entity.Item{Code: "A", Name: "A", Unit: "EA", CurrentStock: 10}
	require.NoError(t, items.Create(ctx, item))
	p := &entity.Project{Code: "P1", Name: "Proyecto", Status: entity.ProjectStatusPending}
	require.NoError(t, projects.Create(ctx, p))
	require.NoError(t, pis.Create(ctx, &entity.ProjectItem{ProjectID: p.ID, ItemID: item.ID, RequiredQuantity: 1}))
	pid := p.ID
	require.NoError(t, txs.Create(ctx, &entity.Transaction{ItemID: item.ID, Type: entity.TransactionTypeOUT, Quantity: 1, ProjectID: &pid, TransactionDate: time.Now()}))

	require.NoError(t, projects.Delete(ctx, p.ID))

	left, err := pis.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	all, err := txs.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].ProjectID)
}

func TestTransactionRepository_OrdenFechaDesc(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	txs := memory.NewTransactionRepository(store)
	item := &entity.Item{Code: "A", Name: "Ítem A", Unit: "EA"}
	require.NoError(t, items.Create(ctx, item))

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, txs.Create(ctx, &entity.Transaction{
			ItemID: item.ID, Type: entity.TransactionTypeIN, Quantity: i + 1,
			TransactionDate: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	all, err := txs.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 3, all[0].Quantity)
	assert.Equal(t, "Ítem A", all[0].ItemName)

	ranged, err := txs.ListByDateRange(ctx, base, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}

func TestTxRunner_RollbackRestauraStock(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	item := &entity.Item{Code: "A", Name: "A", Unit: "EA", CurrentStock: 10}
	require.NoError(t, items.Create(ctx, item))

	boom := errors.New("falla")
	err := memory.NewTxRunner(store).Run(ctx, func(ir repository.ItemRepository, tr repository.TransactionRepository) error {
		require.NoError(t, ir.UpdateStock(ctx, item.ID, 3))
		require.NoError(t, tr.Create(ctx, &entity.Transaction{ItemID: item.ID, Type: entity.TransactionTypeOUT, Quantity: 7}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.CurrentStock)

	all, err := memory.NewTransactionRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTxRunner_RollbackConservaEscriturasConcurrentes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	items := memory.NewItemRepository(store)
	a := &entity.Item{Code: "A", Name: "A", Unit: "EA", CurrentStock: 5}
	require.NoError(t, items.Create(ctx, a))

	inTx := make(chan struct{})
	release := make(chan struct{})
	boom := errors.New("falla")
	done := make(chan error, 1)
	go func() {
		done <- memory.NewTxRunner(store).Run(ctx, func(ir repository.ItemRepository, _ repository.TransactionRepository) error {
			if err := ir.UpdateStock(ctx, a.ID, 1); err != nil {
				return err
			}
			close(inTx)
			<-release
			return boom
		})
	}()

	<-inTx
	b := &entity.Item{Code: "B", Name: "B", Unit: "EA", CurrentStock: 2}
	require.NoError(t, items.Create(ctx, b))
	renamed, err := items.GetByID(ctx, a.ID)
	require.NoError(t, err)
	renamed.Location = "Bodega 2"
	require.NoError(t, items.Update(ctx, renamed))
	close(release)
	require.ErrorIs(t, <-done, boom)

	gotB, err := items.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, gotB, "el ítem creado fuera de la transacción debe sobrevivir")

	gotA, err := items.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, gotA.CurrentStock, "el stock vuelve al valor previo")
	assert.Equal(t, "Bodega 2", gotA.Location, "la edición concurrente se conserva")
}

func TestNotificationRepository_HasUnreadYMarcarLeida(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNotificationRepository(memory.NewStore())
	rel := int64(7)
	n := &entity.Notification{Type: entity.NotificationLowStock, Title: "t", RelatedID: &rel, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, n))

	has, err := repo.HasUnread(ctx, entity.NotificationLowStock, 7)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, repo.MarkAsRead(ctx, n.ID))
	has, err = repo.HasUnread(ctx, entity.NotificationLowStock, 7)
	require.NoError(t, err)
	assert.False(t, has)

	count, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
