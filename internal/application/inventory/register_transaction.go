package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// TransactionUseCase registra entradas/salidas de stock de forma transaccional
// (SELECT FOR UPDATE + Commit/Rollback) y consulta el historial.
type TransactionUseCase struct {
	txRunner    TxRunner
	txRepo      repository.TransactionRepository
	projectRepo repository.ProjectRepository
	alerter     StockAlerter
	log         zerolog.Logger
}

// NewTransactionUseCase construye el caso de uso. alerter puede ser nil.
func NewTransactionUseCase(
	txRunner TxRunner,
	txRepo repository.TransactionRepository,
	projectRepo repository.ProjectRepository,
	alerter StockAlerter,
	log zerolog.Logger,
) *TransactionUseCase {
	return &TransactionUseCase{
		txRunner:    txRunner,
		txRepo:      txRepo,
		projectRepo: projectRepo,
		alerter:     alerter,
		log:         log,
	}
}

// TransactionInput entrada de RegisterTransaction.
type TransactionInput struct {
	ItemID          int64
	Type            string
	Quantity        int
	ProjectID       *int64
	ReferenceNo     string
	TransactionDate *time.Time
	Notes           string
	CreatedBy       string
}

// FromRequest adapta el DTO HTTP. Si el body no trae createdBy se usa el usuario del token.
func FromRequest(in dto.TransactionRequest, userID string) TransactionInput {
	createdBy := strings.TrimSpace(in.CreatedBy)
	if createdBy == "" {
		createdBy = userID
	}
	return TransactionInput{
		ItemID:          in.InventoryID,
		Type:            strings.ToUpper(strings.TrimSpace(in.TransactionType)),
		Quantity:        in.Quantity,
		ProjectID:       in.ProjectID,
		ReferenceNo:     strings.TrimSpace(in.ReferenceNo),
		TransactionDate: in.TransactionDate,
		Notes:           in.Notes,
		CreatedBy:       createdBy,
	}
}

// RegisterTransaction bloquea la fila del ítem, aplica el delta (IN suma, OUT resta) y guarda
// el registro en la misma transacción. Una salida que deja el stock negativo devuelve
// domain.ErrInsufficientStock y no persiste nada.
func (uc *TransactionUseCase) RegisterTransaction(ctx context.Context, in TransactionInput) (*dto.TransactionResponse, error) {
	if in.Type != entity.TransactionTypeIN && in.Type != entity.TransactionTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if in.ItemID <= 0 || in.Quantity <= 0 || in.Quantity > entity.MaxStock {
		return nil, domain.ErrInvalidInput
	}
	if utf8.RuneCountInString(in.ReferenceNo) > entity.MaxReferenceLen ||
		utf8.RuneCountInString(in.CreatedBy) > entity.MaxReferenceLen {
		return nil, domain.ErrInvalidInput
	}

	var project *entity.Project
	if in.ProjectID != nil {
		p, err := uc.projectRepo.GetByID(ctx, *in.ProjectID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		project = p
	}

	now := time.Now()
	tx := &entity.Transaction{
		ItemID:          in.ItemID,
		Type:            in.Type,
		Quantity:        in.Quantity,
		ProjectID:       in.ProjectID,
		ReferenceNo:     in.ReferenceNo,
		TransactionDate: now,
		Notes:           in.Notes,
		CreatedBy:       in.CreatedBy,
		CreatedAt:       now,
	}
	if in.TransactionDate != nil {
		tx.TransactionDate = *in.TransactionDate
	}
	if tx.ReferenceNo == "" {
		tx.ReferenceNo = "TX-" + strings.ToUpper(uuid.New().String()[:8])
	}
	if project != nil {
		tx.ProjectName = project.Name
	}

	var updated *entity.Item
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) error {
		item, err := itemRepo.GetForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		newStock := item.CurrentStock + tx.Delta()
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}
		if newStock > entity.MaxStock {
			return fmt.Errorf("stock resultante %d fuera de rango: %w", newStock, domain.ErrInvalidInput)
		}
		if err := itemRepo.UpdateStock(ctx, item.ID, newStock); err != nil {
			return err
		}
		item.CurrentStock = newStock
		item.UpdatedAt = now
		tx.ItemCode = item.Code
		tx.ItemName = item.Name
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.alerter != nil && updated.IsLowStock() {
		if err := uc.alerter.NotifyLowStock(ctx, updated); err != nil {
			uc.log.Warn().Err(err).Int64("item_id", updated.ID).Msg("no se pudo crear la alerta de stock bajo")
		}
	}
	out := dto.ToTransactionResponse(tx)
	return &out, nil
}
