package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-movil-api/internal/application/auth"
	"github.com/jhoicas/pos-movil-api/internal/application/catalog"
	"github.com/jhoicas/pos-movil-api/internal/application/inventory"
	"github.com/jhoicas/pos-movil-api/internal/application/orders"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	AdjustmentUC *inventory.AdjustmentUseCase
	StockUC      *inventory.StockUpdateUseCase
	HistoryUC    *inventory.HistoryUseCase
	CatalogUC    *catalog.CatalogUseCase
	OrderUC      *orders.OrderUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: el registro se autentica con la clave maestra en el body)
	deviceHandler := NewDeviceHandler(deps.AuthUC)
	api.Post("/auth/register-device", deviceHandler.Register)

	// Rutas protegidas (requieren Bearer Token de dispositivo)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	// Inventario (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustmentUC, deps.StockUC, deps.HistoryUC)
	invGroup.Post("/adjustments", inventoryHandler.SubmitAdjustment)
	invGroup.Post("/stock", inventoryHandler.UpdateStock)
	invGroup.Get("/history", inventoryHandler.History)

	// Catálogo (protegido, solo lectura)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/search", productHandler.Search)
	products.Get("/managed", productHandler.Managed)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/variations", productHandler.Variations)

	// Pedidos (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Put("/:id", orderHandler.UpdateStatus)

	// Administración (clave maestra en X-Admin-Key)
	admin := api.Group("/admin", AdminMiddleware(deps.AuthUC))
	admin.Get("/devices", deviceHandler.List)
	admin.Delete("/devices/:uuid", deviceHandler.Revoke)
	admin.Post("/rotate-key", deviceHandler.RotateKey)
}
