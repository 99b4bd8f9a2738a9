package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revendapp/revenda-api/internal/application/auth"
	apppurchase "github.com/revendapp/revenda-api/internal/application/purchase"
	"github.com/revendapp/revenda-api/internal/application/reporting"
	"github.com/revendapp/revenda-api/internal/application/usecase"
	"github.com/revendapp/revenda-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	StoreUC    *usecase.StoreUseCase
	ProgramUC  *usecase.ProgramUseCase
	PurchaseUC *apppurchase.UseCase
	StockUC    *reporting.StockUseCase
	PointsUC   *reporting.PointsUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products (protegido; exclusão só admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Stores (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", adminOnly, storeHandler.Delete)

	// Programs (protegido)
	programs := protected.Group("/programs")
	programHandler := NewProgramHandler(deps.ProgramUC)
	programs.Post("/", programHandler.Create)
	programs.Get("/", programHandler.List)
	programs.Get("/:id", programHandler.GetByID)
	programs.Put("/:id", programHandler.Update)
	programs.Delete("/:id", adminOnly, programHandler.Delete)

	// Purchases: ciclo de vida completo (protegido)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Put("/:id/status", purchaseHandler.Transition)
	purchases.Put("/:id/points-received", purchaseHandler.SetPointsReceived)
	purchases.Delete("/:id", adminOnly, purchaseHandler.Delete)

	// Stock: foto do razão + relatório PDF (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.Snapshot)
	stockGroup.Get("/report.pdf", stockHandler.ReportPDF)

	// Points: pontos pendentes por programa (protegido)
	pointsGroup := protected.Group("/points")
	pointsHandler := NewPointsHandler(deps.PointsUC)
	pointsGroup.Get("/pending", pointsHandler.PendingPoints)
}
