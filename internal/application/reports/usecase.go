package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
)

// Tipos de reporte expuestos en /api/reports/{kind}.
const (
	KindInventoryStatus    = "inventory-status"
	KindProjectSummary     = "project-summary"
	KindTransactionHistory = "transaction-history"
)

// UseCase genera los reportes.
type UseCase struct {
	items        repository.ItemRepository
	projects     repository.ProjectRepository
	transactions repository.TransactionRepository
	availability AvailabilityChecker
	renderer     PDFRenderer
	now          func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	items repository.ItemRepository,
	projects repository.ProjectRepository,
	transactions repository.TransactionRepository,
	availability AvailabilityChecker,
	renderer PDFRenderer,
) *UseCase {
	return &UseCase{
		items:        items,
		projects:     projects,
		transactions: transactions,
		availability: availability,
		renderer:     renderer,
		now:          time.Now,
	}
}

// InventoryStatus estado del inventario.
func (uc *UseCase) InventoryStatus(ctx context.Context) (*dto.InventoryStatusReport, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportes: inventario: %w", err)
	}
	return BuildInventoryStatus(items, uc.now()), nil
}

// ProjectSummary resumen por estado.
func (uc *UseCase) ProjectSummary(ctx context.Context) (*dto.ProjectSummaryReport, error) {
	projects, err := uc.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportes: proyectos: %w", err)
	}
	return BuildProjectSummary(projects, uc.now()), nil
}

// TransactionHistory historial completo o, si from y to vienen, acotado a ese rango.
func (uc *UseCase) TransactionHistory(ctx context.Context, from, to *time.Time) (*dto.TransactionHistoryReport, error) {
	var (
		txs []*entity.Transaction
		err error
	)
	switch {
	case from == nil && to == nil:
		txs, err = uc.transactions.List(ctx)
	case from != nil && to != nil:
		if to.Before(*from) {
			return nil, domain.ErrInvalidInput
		}
		txs, err = uc.transactions.ListByDateRange(ctx, *from, *to)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, fmt.Errorf("reportes: transacciones: %w", err)
	}
	return BuildTransactionHistory(txs, uc.now()), nil
}

// PDF genera el reporte indicado y lo renderiza. Devuelve bytes y nombre de archivo sugerido.
func (uc *UseCase) PDF(ctx context.Context, kind string) ([]byte, string, error) {
	stamp := uc.now().Format("20060102")
	var (
		doc []byte
		err error
	)
	switch kind {
	case KindInventoryStatus:
		r, e := uc.InventoryStatus(ctx)
		if e != nil {
			return nil, "", e
		}
		doc, err = uc.renderer.InventoryStatusPDF(ctx, r)
	case KindProjectSummary:
		r, e := uc.ProjectSummary(ctx)
		if e != nil {
			return nil, "", e
		}
		doc, err = uc.renderer.ProjectSummaryPDF(ctx, r)
	case KindTransactionHistory:
		r, e := uc.TransactionHistory(ctx, nil, nil)
		if e != nil {
			return nil, "", e
		}
		doc, err = uc.renderer.TransactionHistoryPDF(ctx, r)
	default:
		return nil, "", domain.ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("reportes: pdf %s: %w", kind, err)
	}
	return doc, fmt.Sprintf("%s-%s.pdf", kind, stamp), nil
}

// AvailabilityPDF renderiza la disponibilidad de un proyecto.
func (uc *UseCase) AvailabilityPDF(ctx context.Context, projectID int64) ([]byte, string, error) {
	res, err := uc.availability.Check(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.renderer.AvailabilityPDF(ctx, res)
	if err != nil {
		return nil, "", fmt.Errorf("reportes: pdf disponibilidad: %w", err)
	}
	return doc, fmt.Sprintf("availability-%d-%s.pdf", projectID, uc.now().Format("20060102")), nil
}
