package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-proyectos/internal/application/reports"
)

// ReportHandler reportes agregados en JSON y PDF (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryStatus godoc
// @Summary      Estado del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryStatusReport
// @Router       /api/reports/inventory-status [get]
func (h *ReportHandler) InventoryStatus(c *fiber.Ctx) error {
	out, err := h.uc.InventoryStatus(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ProjectSummary godoc
// @Summary      Resumen de proyectos por estado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProjectSummaryReport
// @Router       /api/reports/project-summary [get]
func (h *ReportHandler) ProjectSummary(c *fiber.Ctx) error {
	out, err := h.uc.ProjectSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TransactionHistory godoc
// @Summary      Historial de transacciones
// @Description  Sin parámetros cubre todo el historial; startDate y endDate deben venir juntos.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "RFC3339 o YYYY-MM-DD"
// @Param        endDate    query  string  false  "RFC3339 o YYYY-MM-DD"
// @Success      200        {object}  dto.TransactionHistoryReport
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/reports/transaction-history [get]
func (h *ReportHandler) TransactionHistory(c *fiber.Ctx) error {
	var from, to *time.Time
	start, end := c.Query("startDate"), c.Query("endDate")
	if start != "" || end != "" {
		f, t, err := parseRange(start, end)
		if err != nil {
			return badRequest(c, "INVALID_DATE", err.Error())
		}
		from, to = &f, &t
	}
	out, err := h.uc.TransactionHistory(c.UserContext(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Reporte en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        kind  path  string  true  "inventory-status | project-summary | transaction-history"
// @Success      200   {file}  binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/{kind}/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	doc, name, err := h.uc.PDF(c.UserContext(), c.Params("kind"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, doc, name)
}
