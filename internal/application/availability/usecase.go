package availability

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/domain"
	"github.com/jhoicas/inventario-proyectos/internal/domain/availability"
	"github.com/jhoicas/inventario-proyectos/internal/domain/entity"
)

// UseCase verifica si el inventario cubre los requerimientos de un proyecto.
// No guarda estado: cada llamada vuelve a leer las fuentes.
type UseCase struct {
	source   Source
	notifier ShortageNotifier
	log      zerolog.Logger
}

// NewUseCase construye el caso de uso. notifier puede ser nil (p. ej. en el cliente CLI).
func NewUseCase(source Source, notifier ShortageNotifier, log zerolog.Logger) *UseCase {
	return &UseCase{source: source, notifier: notifier, log: log}
}

// Check devuelve la disponibilidad del proyecto. Los errores de la fuente se propagan envueltos;
// un requerimiento sobre un ítem inexistente devuelve *domain.UnknownItemError.
func (uc *UseCase) Check(ctx context.Context, projectID int64) (*dto.ProjectAvailabilityResponse, error) {
	snap, err := uc.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	res, err := availability.Reconcile(snap.Requirements, availability.NewStockLookup(snap.Stock))
	if err != nil {
		return nil, fmt.Errorf("disponibilidad: proyecto %d: %w", projectID, err)
	}
	return dto.ToProjectAvailability(snap.Project, res), nil
}

// CheckAndNotify igual que Check y, si hay faltantes, genera la notificación PROJECT_SHORTAGE.
// Un fallo al notificar se registra pero no invalida el resultado.
func (uc *UseCase) CheckAndNotify(ctx context.Context, projectID int64) (*dto.ProjectAvailabilityResponse, error) {
	snap, err := uc.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	res, err := availability.Reconcile(snap.Requirements, availability.NewStockLookup(snap.Stock))
	if err != nil {
		return nil, fmt.Errorf("disponibilidad: proyecto %d: %w", projectID, err)
	}
	if !res.AllItemsAvailable && uc.notifier != nil {
		shortages := res.Shortages()
		uc.log.Warn().
			Int64("project_id", projectID).
			Int("shortages", len(shortages)).
			Msg("proyecto con faltante de componentes")
		if err := uc.notifier.NotifyProjectShortage(ctx, snap.Project.ID, snap.Project.Name, shortages); err != nil {
			uc.log.Warn().Err(err).Int64("project_id", projectID).Msg("no se pudo registrar la notificación de faltante")
		}
	}
	return dto.ToProjectAvailability(snap.Project, res), nil
}

func (uc *UseCase) load(ctx context.Context, projectID int64) (*Snapshot, error) {
	if loader, ok := uc.source.(SnapshotLoader); ok {
		snap, err := loader.LoadSnapshot(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("disponibilidad: snapshot proyecto %d: %w", projectID, err)
		}
		return checkProject(snap, projectID)
	}
	snap, err := uc.fetchParallel(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return checkProject(snap, projectID)
}

func checkProject(snap *Snapshot, projectID int64) (*Snapshot, error) {
	if snap.Project == nil {
		return nil, fmt.Errorf("disponibilidad: proyecto %d: %w", projectID, domain.ErrNotFound)
	}
	return snap, nil
}

// fetchParallel lanza las tres lecturas a la vez y espera todas. Los canales tienen buffer
// para que las goroutines terminen aunque el llamador abandone por cancelación.
func (uc *UseCase) fetchParallel(ctx context.Context, projectID int64) (*Snapshot, error) {
	type projectResult struct {
		project *entity.Project
		err     error
	}
	type requirementsResult struct {
		reqs []availability.Requirement
		err  error
	}
	type stockResult struct {
		stock []availability.StockLevel
		err   error
	}

	projectCh := make(chan projectResult, 1)
	reqsCh := make(chan requirementsResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		p, err := uc.source.GetProject(ctx, projectID)
		projectCh <- projectResult{p, err}
	}()
	go func() {
		reqs, err := uc.source.ListRequirements(ctx, projectID)
		reqsCh <- requirementsResult{reqs, err}
	}()
	go func() {
		stock, err := uc.source.ListStock(ctx)
		stockCh <- stockResult{stock, err}
	}()

	var (
		project projectResult
		reqs    requirementsResult
		stock   stockResult
	)
	for received := 0; received < 3; received++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case project = <-projectCh:
		case reqs = <-reqsCh:
		case stock = <-stockCh:
		}
	}

	if project.err != nil {
		return nil, fmt.Errorf("disponibilidad: proyecto %d: %w", projectID, project.err)
	}
	if reqs.err != nil {
		return nil, fmt.Errorf("disponibilidad: requerimientos proyecto %d: %w", projectID, reqs.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("disponibilidad: inventario: %w", stock.err)
	}
	return &Snapshot{Project: project.project, Requirements: reqs.reqs, Stock: stock.stock}, nil
}
