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
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/StearCodeK/MajoTerminalo/internal/application/auth"
	"github.com/StearCodeK/MajoTerminalo/internal/application/delivery"
	"github.com/StearCodeK/MajoTerminalo/internal/application/usecase"
	infrapdf "github.com/StearCodeK/MajoTerminalo/internal/infrastructure/pdf"
	"github.com/StearCodeK/MajoTerminalo/internal/infrastructure/postgres"
	httpRouter "github.com/StearCodeK/MajoTerminalo/internal/interfaces/http"
	"github.com/StearCodeK/MajoTerminalo/pkg/config"
	"github.com/StearCodeK/MajoTerminalo/pkg/logger"
)

// runMigrations aplica las migraciones pendientes antes de abrir el pool.
func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	requesterRepo := postgres.NewRequesterRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(
		txRunner, productRepo, catalogRepo, movementRepo,
		cfg.Inventory.LowStockThreshold,
	)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo, requesterRepo)
	deliveryUC := delivery.NewRegisterDeliveryUseCase(
		txRunner, productRepo, departmentRepo, requesterRepo, deliveryRepo,
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	noteGen := infrapdf.NewDeliveryNoteGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MajoTerminalo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		CatalogUC:    catalogUC,
		DepartmentUC: departmentUC,
		DeliveryUC:   deliveryUC,
		AuthUC:       authUC,
		DeliveryRepo: deliveryRepo,
		NoteGen:      noteGen,
		JWTSecret:    cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
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
