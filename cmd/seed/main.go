// seed mengisi data awal untuk lingkungan development: satu user admin
// (email/password dari SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD) dan beberapa
// bahan dapur contoh dengan stok awal lewat ledger, sehingga setiap bahan
// langsung punya movement IN pertama.
//
// Jalankan: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/application/usecase"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/infrastructure/postgres"
	"github.com/dapurgempita/gempita-api/pkg/config"
	"github.com/dapurgempita/gempita-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "memuat konfigurasi: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("koneksi ke PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	stockLedger := ledger.NewStockLedger(txRunner, ingredientRepo, movementRepo, ledger.Config{
		AllowNegativeStock: cfg.Ledger.AllowNegativeStock,
	})
	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo, stockLedger)

	adminID, err := seedAdmin(userRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("seed user admin")
	}

	samples := []dto.CreateIngredientRequest{
		{Name: "Beras", Unit: "kg", MinimumStock: dec("25"), InitialStock: dec("100")},
		{Name: "Minyak Goreng", Unit: "liter", MinimumStock: dec("10"), InitialStock: dec("40")},
		{Name: "Ayam Potong", Unit: "kg", MinimumStock: dec("15"), InitialStock: dec("30")},
		{Name: "Cabai Merah", Unit: "kg", MinimumStock: dec("3"), InitialStock: dec("8")},
		{Name: "Santan Instan", Unit: "pcs", MinimumStock: dec("20"), InitialStock: dec("60")},
	}
	created := 0
	for _, in := range samples {
		if _, err := ingredientUC.Create(ctx, adminID, in); err != nil {
			if err == domain.ErrDuplicate {
				continue // sudah pernah di-seed
			}
			log.Fatal().Err(err).Str("name", in.Name).Msg("seed bahan")
		}
		created++
	}

	log.Info().Int("ingredients", created).Msg("seed selesai")
}

// seedAdmin membuat user admin jika belum ada, mengembalikan ID-nya.
func seedAdmin(userRepo *postgres.UserRepo) (string, error) {
	email := envOr("SEED_ADMIN_EMAIL", "admin@dapurgempita.id")
	password := envOr("SEED_ADMIN_PASSWORD", "gantisegera123")

	existing, err := userRepo.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.ID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin Dapur",
		Role:         entity.RoleAdmin,
		Status:       entity.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		return "", err
	}
	return admin.ID, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
