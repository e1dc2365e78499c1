package http

import (
	"github.com/gofiber/fiber/v2"

	appavailability "github.com/jhoicas/inventario-proyectos/internal/application/availability"
	"github.com/jhoicas/inventario-proyectos/internal/application/dto"
	"github.com/jhoicas/inventario-proyectos/internal/application/reports"
	"github.com/jhoicas/inventario-proyectos/internal/application/usecase"
)

// ProjectHandler maneja las peticiones HTTP de proyectos y sus componentes (protegido).
type ProjectHandler struct {
	uc           *usecase.ProjectUseCase
	availability *appavailability.UseCase
	reports      *reports.UseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, availability *appavailability.UseCase, reports *reports.UseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, availability: availability, reports: reports}
}

// List godoc
// @Summary      Listar proyectos
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProjectResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proyecto por ID
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Obtener proyecto por código
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del proyecto"
// @Success      200   {object}  dto.ProjectResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/code/{code} [get]
func (h *ProjectHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.UserContext(), c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByStatus godoc
// @Summary      Listar proyectos por estado
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        status  path  string  true  "PENDING | IN_PROGRESS | COMPLETED | CANCELLED"
// @Success      200     {array}  dto.ProjectResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/projects/status/{status} [get]
func (h *ProjectHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(c.UserContext(), c.Params("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar proyectos por código o nombre
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        keyword  query  string  true  "Texto a buscar"
// @Success      200      {array}  dto.ProjectResponse
// @Router       /api/projects/search [get]
func (h *ProjectHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("keyword"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProjectRequest  true  "Datos del proyecto"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.ProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar proyecto
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proyecto"
// @Param        body  body  dto.ProjectRequest  true  "Datos del proyecto"
// @Success      200   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.ProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proyecto
// @Description  Elimina también sus componentes; las transacciones imputadas quedan sin proyecto.
// @Tags         projects
// @Security     Bearer
// @Param        id   path  int  true  "ID del proyecto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListItems godoc
// @Summary      Componentes requeridos por el proyecto
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del proyecto"
// @Success      200  {array}  dto.ProjectItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/items [get]
func (h *ProjectHandler) ListItems(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.uc.ListItems(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar componente requerido
// @Description  Tras agregar se verifica la disponibilidad; si falta stock se genera una notificación PROJECT_SHORTAGE.
// @Tags         projects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del proyecto"
// @Param        body  body  dto.ProjectItemRequest  true  "Ítem y cantidad requerida"
// @Success      201   {object}  dto.ProjectItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/items [post]
func (h *ProjectHandler) AddItem(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.ProjectItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.AddItem(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteItem godoc
// @Summary      Quitar componente requerido
// @Tags         projects
// @Security     Bearer
// @Param        itemId  path  int  true  "ID del componente (project item)"
// @Success      204
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/projects/items/{itemId} [delete]
func (h *ProjectHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := paramID(c, "itemId")
	if !ok {
		return badRequest(c, "INVALID_ID", "itemId inválido")
	}
	if err := h.uc.DeleteItem(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Availability godoc
// @Summary      Disponibilidad de componentes
// @Description  Concilia los requerimientos del proyecto contra el stock vigente. El resultado no se guarda.
// @Tags         projects
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectAvailabilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/availability [get]
func (h *ProjectHandler) Availability(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.availability.Check(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AvailabilityPDF godoc
// @Summary      Disponibilidad de componentes en PDF
// @Tags         projects
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del proyecto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/projects/{id}/availability/pdf [get]
func (h *ProjectHandler) AvailabilityPDF(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	doc, name, err := h.reports.AvailabilityPDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, doc, name)
}

// sendPDF responde el documento como descarga.
func sendPDF(c *fiber.Ctx, doc []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
