package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/StearCodeK/MajoTerminalo/internal/application/auth"
	"github.com/StearCodeK/MajoTerminalo/internal/application/delivery"
	"github.com/StearCodeK/MajoTerminalo/internal/application/usecase"
	"github.com/StearCodeK/MajoTerminalo/internal/domain/repository"
	"github.com/StearCodeK/MajoTerminalo/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CatalogUC    *usecase.CatalogUseCase
	DepartmentUC *usecase.DepartmentUseCase
	DeliveryUC   *delivery.RegisterDeliveryUseCase
	AuthUC       *auth.AuthUseCase
	DeliveryRepo repository.DeliveryRepository
	NoteGen      *pdf.DeliveryNoteGenerator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventario (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole("admin"), productHandler.Delete)
	products.Post("/:id/stock", productHandler.AddStock)
	products.Get("/:id/movements", productHandler.Movements)

	// Catálogos y departamentos (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.DepartmentUC)
	catalogs := protected.Group("/catalogs")
	catalogs.Get("/:kind", catalogHandler.List)
	catalogs.Post("/:kind", RequireRole("admin"), catalogHandler.Create)
	catalogs.Patch("/:kind/:id", RequireRole("admin"), catalogHandler.SetActive)
	protected.Get("/departments", catalogHandler.ListDepartments)
	protected.Post("/departments", catalogHandler.CreateDepartment)
	protected.Get("/requesters", catalogHandler.ListRequesters)
	protected.Post("/requesters", catalogHandler.CreateRequester)

	// Solicitudes de salida (protegido)
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC, deps.DeliveryRepo, deps.NoteGen)
	deliveries.Post("/", deliveryHandler.Register)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.GetDetail)
	deliveries.Get("/:id/note", deliveryHandler.Note)

	// Exportes (protegido)
	exports := protected.Group("/exports")
	exportHandler := NewExportHandler(deps.ProductUC, deps.DeliveryRepo)
	exports.Get("/inventory", exportHandler.Inventory)
	exports.Get("/requests", exportHandler.Requests)
}
