package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dapurgempita/gempita-api/internal/application/analytics"
	"github.com/dapurgempita/gempita-api/internal/application/auth"
	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/application/production"
	"github.com/dapurgempita/gempita-api/internal/application/purchasing"
	"github.com/dapurgempita/gempita-api/internal/application/usecase"
	"github.com/dapurgempita/gempita-api/internal/infrastructure/postgres"
	httpRouter "github.com/dapurgempita/gempita-api/internal/interfaces/http"
	"github.com/dapurgempita/gempita-api/pkg/config"
	"github.com/dapurgempita/gempita-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("memuat konfigurasi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("allow_negative_stock", cfg.Ledger.AllowNegativeStock).
		Msg("memulai aplikasi")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("koneksi ke PostgreSQL")
	}
	defer pool.Close()

	ingredientRepo := postgres.NewIngredientRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockLedger := ledger.NewStockLedger(txRunner, ingredientRepo, movementRepo, ledger.Config{
		AllowNegativeStock: cfg.Ledger.AllowNegativeStock,
	})
	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo, stockLedger)
	purchaseUC := purchasing.NewPurchaseUseCase(txRunner, stockLedger, purchaseRepo, ingredientRepo)
	recipeUC := usecase.NewRecipeUseCase(recipeRepo, ingredientRepo)
	productionUC := production.NewProductionUseCase(txRunner, stockLedger, recipeRepo, productionRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo, stockLedger)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		IngredientUC: ingredientUC,
		RecipeUC:     recipeUC,
		UserUC:       userUC,
		StockLedger:  stockLedger,
		PurchaseUC:   purchaseUC,
		ProductionUC: productionUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinyal shutdown diterima, menutup server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}

	log.Info().Msg("aplikasi berhenti")
}
