package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
)

// List historial completo, más reciente primero.
func (uc *TransactionUseCase) List(ctx context.Context) ([]dto.TransactionResponse, error) {
	list, err := uc.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponses(list), nil
}

// ListByItem movimientos de un ítem.
func (uc *TransactionUseCase) ListByItem(ctx context.Context, itemID int64) ([]dto.TransactionResponse, error) {
	list, err := uc.txRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponses(list), nil
}

// ListByProject movimientos imputados a un proyecto.
func (uc *TransactionUseCase) ListByProject(ctx context.Context, projectID int64) ([]dto.TransactionResponse, error) {
	list, err := uc.txRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponses(list), nil
}

// ListByDateRange movimientos con fecha en [from, to].
func (uc *TransactionUseCase) ListByDateRange(ctx context.Context, from, to time.Time) ([]dto.TransactionResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.txRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponses(list), nil
}
