package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dapurgempita/gempita-api/internal/application/analytics"
	"github.com/dapurgempita/gempita-api/internal/application/auth"
	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/application/production"
	"github.com/dapurgempita/gempita-api/internal/application/purchasing"
	"github.com/dapurgempita/gempita-api/internal/application/usecase"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
)

// RouterDeps dependensi router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	IngredientUC *usecase.IngredientUseCase
	RecipeUC     *usecase.RecipeUseCase
	UserUC       *usecase.UserUseCase
	StockLedger  *ledger.StockLedger
	PurchaseUC   *purchasing.PurchaseUseCase
	ProductionUC *production.ProductionUseCase
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router mendaftarkan seluruh rute API.
//
// Matriks akses: bahan + stok + pembelian milik gudang, resep + produksi milik
// dapur, manajemen user milik admin; admin selalu boleh. Endpoint baca katalog
// (bahan, resep) terbuka untuk semua user yang terautentikasi.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (publik)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rute terproteksi (wajib Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	gudang := RequireRole(entity.RoleAdmin, entity.RoleGudang)
	dapur := RequireRole(entity.RoleAdmin, entity.RoleDapur)
	admin := RequireRole(entity.RoleAdmin)

	// Ingredients: baca semua role, tulis gudang
	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Post("/", gudang, ingredientHandler.Create)
	ingredients.Put("/:id", gudang, ingredientHandler.Update)
	ingredients.Delete("/:id", gudang, ingredientHandler.Delete)

	// Stock ledger (gudang)
	stock := protected.Group("/stock", gudang)
	stockHandler := NewStockHandler(deps.StockLedger)
	stock.Post("/movements", stockHandler.RecordMovement)
	stock.Get("/movements", stockHandler.ListMovements)
	stock.Get("/low-stock", stockHandler.GetLowStock)

	// Purchases (gudang)
	purchases := protected.Group("/purchases", gudang)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Post("/:id/order", purchaseHandler.MarkOrdered)
	purchases.Post("/:id/receive", purchaseHandler.ConfirmReceipt)

	// Recipes: baca semua role, tulis dapur
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Post("/", dapur, recipeHandler.Create)
	recipes.Put("/:id", dapur, recipeHandler.Update)
	recipes.Delete("/:id", dapur, recipeHandler.Delete)

	// Productions (dapur)
	productions := protected.Group("/productions", dapur)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	productions.Post("/", productionHandler.Record)
	productions.Get("/", productionHandler.List)

	// Users (admin)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)

	// Dashboard (semua user terautentikasi)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
