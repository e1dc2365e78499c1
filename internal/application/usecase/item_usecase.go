package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// StockAlerter genera la notificación de stock bajo para un ítem.
type StockAlerter interface {
	NotifyLowStock(ctx context.Context, item *entity.Item) error
}

// ItemUseCase casos de uso CRUD del inventario. El stock solo cambia aquí en alta/edición;
// las entradas y salidas van por inventory.TransactionUseCase.
type ItemUseCase struct {
	repo    repository.ItemRepository
	alerter StockAlerter
	log     zerolog.Logger
}

// NewItemUseCase construye el caso de uso. alerter puede ser nil.
func NewItemUseCase(repo repository.ItemRepository, alerter StockAlerter, log zerolog.Logger) *ItemUseCase {
	return &ItemUseCase{repo: repo, alerter: alerter, log: log}
}

func validateItem(in dto.ItemRequest) error {
	if strings.TrimSpace(in.ItemCode) == "" || strings.TrimSpace(in.ItemName) == "" || strings.TrimSpace(in.Unit) == "" {
		return domain.ErrInvalidInput
	}
	if tooLong(strings.TrimSpace(in.ItemCode), entity.MaxItemCodeLen) ||
		tooLong(strings.TrimSpace(in.ItemName), entity.MaxItemNameLen) ||
		tooLong(in.Category, entity.MaxItemCategoryLen) ||
		tooLong(in.Unit, entity.MaxItemUnitLen) ||
		tooLong(in.Location, entity.MaxItemLocationLen) {
		return domain.ErrInvalidInput
	}
	if in.CurrentStock == nil || *in.CurrentStock < 0 || *in.CurrentStock > entity.MaxStock {
		return domain.ErrInvalidInput
	}
	if in.MinStock < 0 || in.MinStock > entity.MaxStock {
		return domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && (in.UnitPrice.IsNegative() || in.UnitPrice.GreaterThanOrEqual(entity.MaxUnitPrice)) {
		return domain.ErrInvalidInput
	}
	return nil
}

// tooLong cuenta caracteres, como VARCHAR(n) en PostgreSQL.
func tooLong(s string, n int) bool {
	return utf8.RuneCountInString(s) > n
}

func applyItemRequest(item *entity.Item, in dto.ItemRequest) {
	item.Code = strings.TrimSpace(in.ItemCode)
	item.Name = strings.TrimSpace(in.ItemName)
	item.Category = in.Category
	item.Unit = in.Unit
	item.CurrentStock = *in.CurrentStock
	item.MinStock = in.MinStock
	item.UnitPrice = decimal.Zero
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	item.Location = in.Location
}

// Create registra un ítem nuevo. Código duplicado → domain.ErrDuplicate.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, strings.TrimSpace(in.ItemCode))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.Item{CreatedAt: now, UpdatedAt: now}
	applyItemRequest(item, in)
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.checkLowStock(ctx, item)
	out := dto.ToItemResponse(item)
	return &out, nil
}

// GetByID obtiene un ítem; domain.ErrNotFound si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToItemResponse(item)
	return &out, nil
}

// GetByCode obtiene un ítem por su código.
func (uc *ItemUseCase) GetByCode(ctx context.Context, code string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.ToItemResponse(item)
	return &out, nil
}

// List lista el inventario completo.
func (uc *ItemUseCase) List(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponses(items), nil
}

// ListByCategory filtra por categoría.
func (uc *ItemUseCase) ListByCategory(ctx context.Context, category string) ([]dto.ItemResponse, error) {
	items, err := uc.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponses(items), nil
}

// ListLowStock ítems con stock actual menor al mínimo.
func (uc *ItemUseCase) ListLowStock(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponses(items), nil
}

// Search busca por código o nombre.
func (uc *ItemUseCase) Search(ctx context.Context, keyword string) ([]dto.ItemResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return dto.ToItemResponses(items), nil
}

// Update reemplaza los datos del ítem. Cambiar a un código ya usado → domain.ErrDuplicate.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	code := strings.TrimSpace(in.ItemCode)
	if code != item.Code {
		other, err := uc.repo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
	}
	applyItemRequest(item, in)
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.checkLowStock(ctx, item)
	out := dto.ToItemResponse(item)
	return &out, nil
}

// Delete elimina un ítem.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// checkLowStock dispara la alerta sin afectar el resultado de la operación.
func (uc *ItemUseCase) checkLowStock(ctx context.Context, item *entity.Item) {
	if uc.alerter == nil || !item.IsLowStock() {
		return
	}
	if err := uc.alerter.NotifyLowStock(ctx, item); err != nil {
		uc.log.Warn().Err(err).Int64("item_id", item.ID).Msg("no se pudo crear la alerta de stock bajo")
	}
}
