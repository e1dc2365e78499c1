package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/application/inventory"
)

// TransactionHandler entradas y salidas de stock (protegido).
type TransactionHandler struct {
	uc *inventory.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *inventory.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Listar transacciones (más recientes primero)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByItem godoc
// @Summary      Transacciones de un ítem
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        inventoryId  path  int  true  "ID del ítem"
// @Success      200          {array}  dto.TransactionResponse
// @Router       /api/transactions/inventory/{inventoryId} [get]
func (h *TransactionHandler) ListByItem(c *fiber.Ctx) error {
	id, ok := paramID(c, "inventoryId")
	if !ok {
		return badRequest(c, "INVALID_ID", "inventoryId inválido")
	}
	out, err := h.uc.ListByItem(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByProject godoc
// @Summary      Transacciones imputadas a un proyecto
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        projectId  path  int  true  "ID del proyecto"
// @Success      200        {array}  dto.TransactionResponse
// @Router       /api/transactions/project/{projectId} [get]
func (h *TransactionHandler) ListByProject(c *fiber.Ctx) error {
	id, ok := paramID(c, "projectId")
	if !ok {
		return badRequest(c, "INVALID_ID", "projectId inválido")
	}
	out, err := h.uc.ListByProject(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByDateRange godoc
// @Summary      Transacciones en un rango de fechas
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  true  "RFC3339 o YYYY-MM-DD"
// @Param        endDate    query  string  true  "RFC3339 o YYYY-MM-DD (un día completo si es solo fecha)"
// @Success      200        {array}  dto.TransactionResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/transactions/date-range [get]
func (h *TransactionHandler) ListByDateRange(c *fiber.Ctx) error {
	from, to, err := parseRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return badRequest(c, "INVALID_DATE", err.Error())
	}
	out, err := h.uc.ListByDateRange(c.UserContext(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar entrada o salida de stock
// @Description  IN suma y OUT resta del stock del ítem. Una salida que deja el stock negativo se rechaza con 409.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransactionRequest  true  "Movimiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.RegisterTransaction(c.UserContext(), inventory.FromRequest(in, GetUserID(c)))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// parseRange acepta RFC3339 o YYYY-MM-DD. Con solo fecha, end cubre el día completo.
func parseRange(start, end string) (time.Time, time.Time, error) {
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, errMissingRange
	}
	from, _, err := parseInstant(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, dateOnly, err := parseInstant(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if dateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

func parseInstant(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, false, errBadDate
	}
	return t, true, nil
}
