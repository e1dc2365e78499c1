// Package reports agrega inventario, proyectos y movimientos en los reportes de la API
// y delega el renderizado PDF en un generador externo.
package reports

import (
	"context"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
)

// PDFRenderer genera la representación PDF de cada reporte.
type PDFRenderer interface {
	InventoryStatusPDF(ctx context.Context, r *dto.InventoryStatusReport) ([]byte, error)
	ProjectSummaryPDF(ctx context.Context, r *dto.ProjectSummaryReport) ([]byte, error)
	TransactionHistoryPDF(ctx context.Context, r *dto.TransactionHistoryReport) ([]byte, error)
	AvailabilityPDF(ctx context.Context, r *dto.ProjectAvailabilityResponse) ([]byte, error)
}

// AvailabilityChecker calcula la disponibilidad de un proyecto.
type AvailabilityChecker interface {
	Check(ctx context.Context, projectID int64) (*dto.ProjectAvailabilityResponse, error)
}
