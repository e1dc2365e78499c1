package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventario-proyectos/internal/application/analytics"
	appavailability "github.com/jhoicas/inventario-proyectos/internal/application/availability"
	"github.com/jhoicas/inventario-proyectos/internal/application/inventory"
	"github.com/jhoicas/inventario-proyectos/internal/application/reports"
	"github.com/jhoicas/inventario-proyectos/internal/application/usecase"
	"github.com/jhoicas/inventario-proyectos/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC         *usecase.ItemUseCase
	ProjectUC      *usecase.ProjectUseCase
	NotificationUC *usecase.NotificationUseCase
	TransactionUC  *inventory.TransactionUseCase
	Replenishment  *inventory.ReplenishmentUseCase
	AvailabilityUC *appavailability.UseCase
	ReportsUC      *reports.UseCase
	DashboardUC    *appanalytics.DashboardUseCase
	JWTSecret      string
	JWTIssuer      string
}

// Router registra las rutas de la API. Todas las rutas bajo /api requieren Bearer Token;
// las mutaciones además requieren rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	warehouse := RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero)
	projectLead := RequireRole(jwt.RoleAdmin, jwt.RoleJefeProyecto)

	// Inventory
	inv := api.Group("/inventory")
	itemHandler := NewItemHandler(deps.ItemUC, deps.Replenishment)
	inv.Get("/", itemHandler.List)
	inv.Get("/low-stock", itemHandler.ListLowStock)
	inv.Get("/search", itemHandler.Search)
	inv.Get("/replenishment", itemHandler.Replenishment)
	inv.Get("/code/:code", itemHandler.GetByCode)
	inv.Get("/category/:category", itemHandler.ListByCategory)
	inv.Get("/:id", itemHandler.GetByID)
	inv.Post("/", warehouse, itemHandler.Create)
	inv.Put("/:id", warehouse, itemHandler.Update)
	inv.Delete("/:id", warehouse, itemHandler.Delete)

	// Projects
	projects := api.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.AvailabilityUC, deps.ReportsUC)
	projects.Get("/", projectHandler.List)
	projects.Get("/search", projectHandler.Search)
	projects.Get("/code/:code", projectHandler.GetByCode)
	projects.Get("/status/:status", projectHandler.ListByStatus)
	projects.Delete("/items/:itemId", projectLead, projectHandler.DeleteItem)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Get("/:id/items", projectHandler.ListItems)
	projects.Get("/:id/availability", projectHandler.Availability)
	projects.Get("/:id/availability/pdf", projectHandler.AvailabilityPDF)
	projects.Post("/", projectLead, projectHandler.Create)
	projects.Put("/:id", projectLead, projectHandler.Update)
	projects.Delete("/:id", projectLead, projectHandler.Delete)
	projects.Post("/:id/items", projectLead, projectHandler.AddItem)

	// Transactions
	txs := api.Group("/transactions")
	txHandler := NewTransactionHandler(deps.TransactionUC)
	txs.Get("/", txHandler.List)
	txs.Get("/date-range", txHandler.ListByDateRange)
	txs.Get("/inventory/:inventoryId", txHandler.ListByItem)
	txs.Get("/project/:projectId", txHandler.ListByProject)
	txs.Post("/", warehouse, txHandler.Create)

	// Notifications
	notifs := api.Group("/notifications")
	notifHandler := NewNotificationHandler(deps.NotificationUC)
	notifs.Get("/", notifHandler.List)
	notifs.Get("/unread", notifHandler.ListUnread)
	notifs.Get("/unread-count", notifHandler.UnreadCount)
	notifs.Put("/:id/read", notifHandler.MarkAsRead)
	notifs.Delete("/:id", notifHandler.Delete)

	// Reports
	rep := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	rep.Get("/inventory-status", reportHandler.InventoryStatus)
	rep.Get("/project-summary", reportHandler.ProjectSummary)
	rep.Get("/transaction-history", reportHandler.TransactionHistory)
	rep.Get("/:kind/pdf", reportHandler.PDF)

	// Dashboard
	if deps.DashboardUC != nil {
		api.Get("/dashboard/summary", NewDashboardHandler(deps.DashboardUC).GetSummary)
	}
}
