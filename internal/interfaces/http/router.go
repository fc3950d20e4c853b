package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/auth"
	"github.com/jhoicas/stocktrack-api/internal/application/report"
	"github.com/jhoicas/stocktrack-api/internal/application/stock"
	"github.com/jhoicas/stocktrack-api/internal/application/usecase"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	SiteUC    *usecase.SiteUseCase
	StockUC   *stock.QueryUseCase
	Movement  *stock.PostMovementUseCase
	ExportUC  *report.ExportUseCase
	JWTSecret string
}

// Router registra las rutas de la API. El login es público; todo lo demás
// exige Bearer Token. Las restricciones por rol/sede las aplica el Scoper en
// los use cases; RequireRole corta antes las rutas que son solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: login público, registro solo admin
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products (lectura autenticada, mutación solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Sites (lectura autenticada, alta solo admin)
	sites := protected.Group("/sites")
	siteHandler := NewSiteHandler(deps.SiteUC)
	sites.Get("/", siteHandler.List)
	sites.Post("/", adminOnly, siteHandler.Create)

	// Stock y movimientos
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.Movement)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Post("/movements", adminOnly, stockHandler.PostMovement)
	stockGroup.Put("/:id", adminOnly, stockHandler.SetQuantity)

	// Historial del libro de movimientos
	protected.Get("/history", stockHandler.History)

	// Exportaciones (mismo scoping que los listados)
	exports := protected.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	exports.Get("/stock", exportHandler.Stock)
	exports.Get("/history", exportHandler.History)
}
