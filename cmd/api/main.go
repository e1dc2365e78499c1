package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-proyectos/docs"
	appanalytics "github.com/jhoicas/inventario-proyectos/internal/application/analytics"
	appavailability "github.com/jhoicas/inventario-proyectos/internal/application/availability"
	"github.com/jhoicas/inventario-proyectos/internal/application/inventory"
	"github.com/jhoicas/inventario-proyectos/internal/application/reports"
	"github.com/jhoicas/inventario-proyectos/internal/application/usecase"
	"github.com/jhoicas/inventario-proyectos/internal/domain/repository"
	infrapdf "github.com/jhoicas/inventario-proyectos/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-proyectos/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-proyectos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-proyectos/internal/interfaces/http"
	"github.com/jhoicas/inventario-proyectos/pkg/config"
	"github.com/jhoicas/inventario-proyectos/pkg/logger"
)

// @title        Inventario de Proyectos API
// @version      1.0
// @description  Inventario, proyectos, movimientos de stock, disponibilidad de componentes y reportes.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization

// storage agrupa los adaptadores de persistencia del driver elegido.
type storage struct {
	items         repository.ItemRepository
	projects      repository.ProjectRepository
	projectItems  repository.ProjectItemRepository
	transactions  repository.TransactionRepository
	notifications repository.NotificationRepository
	txRunner      inventory.TxRunner
	availability  appavailability.Source
	close         func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer store.close()

	notificationUC := usecase.NewNotificationUseCase(store.notifications)
	availabilityUC := appavailability.NewUseCase(store.availability, notificationUC, log.Component("availability"))
	itemUC := usecase.NewItemUseCase(store.items, notificationUC, log.Component("items"))
	projectUC := usecase.NewProjectUseCase(store.projects, store.projectItems, store.items, availabilityUC, log.Component("projects"))
	transactionUC := inventory.NewTransactionUseCase(store.txRunner, store.transactions, store.projects, notificationUC, log.Component("transactions"))
	replenishmentUC := inventory.NewReplenishmentUseCase(store.items)
	reportsUC := reports.NewUseCase(store.items, store.projects, store.transactions, availabilityUC, infrapdf.NewMarotoReportRenderer(cfg.App.Name))
	dashboardUC := appanalytics.NewDashboardUseCase(store.items, store.projects, store.transactions, store.notifications)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FilePath:    "docs/swagger.json",
		FileContent: docs.JSON(),
		Path:        "docs",
		Title:       "Inventario de Proyectos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:         itemUC,
		ProjectUC:      projectUC,
		NotificationUC: notificationUC,
		TransactionUC:  transactionUC,
		Replenishment:  replenishmentUC,
		AvailabilityUC: availabilityUC,
		ReportsUC:      reportsUC,
		DashboardUC:    dashboardUC,
		JWTSecret:      cfg.JWT.Secret,
		JWTIssuer:      cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage abre PostgreSQL (con migraciones) o el almacén en memoria según DB_DRIVER.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		s := memory.NewStore()
		return &storage{
			items:         memory.NewItemRepository(s),
			projects:      memory.NewProjectRepository(s),
			projectItems:  memory.NewProjectItemRepository(s),
			transactions:  memory.NewTransactionRepository(s),
			notifications: memory.NewNotificationRepository(s),
			txRunner:      memory.NewTxRunner(s),
			availability:  memory.NewAvailabilitySource(s),
			close:         func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	for _, name := range applied {
		log.Info().Str("migration", name).Msg("migración aplicada")
	}
	return &storage{
		items:         postgres.NewItemRepository(pool),
		projects:      postgres.NewProjectRepository(pool),
		projectItems:  postgres.NewProjectItemRepository(pool),
		transactions:  postgres.NewTransactionRepository(pool),
		notifications: postgres.NewNotificationRepository(pool),
		txRunner:      postgres.NewTxRunner(pool),
		availability:  postgres.NewAvailabilitySource(pool),
		close:         pool.Close,
	}, nil
}
