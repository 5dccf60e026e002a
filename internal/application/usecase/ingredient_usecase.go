package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

// IngredientUseCase CRUD katalog bahan. Stok tidak pernah diubah di sini;
// stok awal dicatat sebagai movement IN pertama lewat ledger.
type IngredientUseCase struct {
	ingredientRepo repository.IngredientRepository
	stockLedger    *ledger.StockLedger
}

// NewIngredientUseCase membangun use case katalog bahan.
func NewIngredientUseCase(ingredientRepo repository.IngredientRepository, stockLedger *ledger.StockLedger) *IngredientUseCase {
	return &IngredientUseCase{ingredientRepo: ingredientRepo, stockLedger: stockLedger}
}

// Create menambah bahan baru. Nama duplikat ditolak dengan ErrDuplicate.
func (uc *IngredientUseCase) Create(ctx context.Context, actorID string, in dto.CreateIngredientRequest) (*entity.Ingredient, error) {
	existing, err := uc.ingredientRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.MinimumStock.IsNegative() || in.InitialStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ing := &entity.Ingredient{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Unit:         in.Unit,
		CurrentStock: decimal.Zero,
		MinimumStock: in.MinimumStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.ingredientRepo.Create(ing); err != nil {
		return nil, err
	}

	if in.InitialStock.GreaterThan(decimal.Zero) {
		mov, err := uc.stockLedger.RecordMovement(ctx, ledger.RecordMovementInput{
			IngredientID: ing.ID,
			Type:         entity.MovementIN,
			Qty:          in.InitialStock,
			ActorID:      actorID,
			Note:         "stok awal",
		})
		if err != nil {
			return nil, err
		}
		ing.CurrentStock = mov.BalanceAfter
	}
	return ing, nil
}

// GetByID mengambil satu bahan.
func (uc *IngredientUseCase) GetByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	ing, err := uc.ingredientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	return ing, nil
}

// Update mengubah nama/satuan/ambang minimum. CurrentStock tidak tersentuh.
func (uc *IngredientUseCase) Update(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*entity.Ingredient, error) {
	ing, err := uc.ingredientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if in.MinimumStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	ing.Name = in.Name
	ing.Unit = in.Unit
	ing.MinimumStock = in.MinimumStock
	ing.UpdatedAt = time.Now()
	if err := uc.ingredientRepo.Update(ing); err != nil {
		return nil, err
	}
	return ing, nil
}

// List listing katalog bahan.
func (uc *IngredientUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Ingredient, error) {
	return uc.ingredientRepo.List(limit, offset)
}

// Delete menghapus bahan dari katalog.
func (uc *IngredientUseCase) Delete(ctx context.Context, id string) error {
	ing, err := uc.ingredientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if ing == nil {
		return domain.ErrNotFound
	}
	return uc.ingredientRepo.Delete(id)
}
