package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

// ProductionUseCase mencatat produksi dapur dan mengonsumsi bahan sesuai resep.
type ProductionUseCase struct {
	txRunner       TxRunner
	stockLedger    *ledger.StockLedger
	recipeRepo     repository.RecipeRepository
	productionRepo repository.ProductionRepository
}

// NewProductionUseCase membangun use case produksi.
func NewProductionUseCase(
	txRunner TxRunner,
	stockLedger *ledger.StockLedger,
	recipeRepo repository.RecipeRepository,
	productionRepo repository.ProductionRepository,
) *ProductionUseCase {
	return &ProductionUseCase{
		txRunner:       txRunner,
		stockLedger:    stockLedger,
		recipeRepo:     recipeRepo,
		productionRepo: productionRepo,
	}
}

// RecordProduction mencatat satu produksi: kebutuhan tiap bahan =
// qty_per_portion x porsi, dicatat sebagai movement OUT dengan referensi
// {productions, id} dalam satu transaksi dengan baris produksinya.
// Stok kurang membatalkan seluruh produksi (sesuai kebijakan ledger).
func (uc *ProductionUseCase) RecordProduction(ctx context.Context, actorID string, in dto.RecordProductionRequest) (*entity.Production, error) {
	if in.Portions <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	recipe, err := uc.recipeRepo.GetByID(in.RecipeID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	if len(recipe.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	prod := &entity.Production{
		ID:        uuid.New().String(),
		RecipeID:  recipe.ID,
		Portions:  in.Portions,
		Note:      in.Note,
		CreatedBy: actorID,
		CreatedAt: now,
	}
	portions := decimal.NewFromInt(int64(in.Portions))

	err = uc.txRunner.RunProduction(ctx, func(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
		productionRepo repository.ProductionRepository,
	) error {
		if err := productionRepo.Create(prod); err != nil {
			return err
		}
		for _, item := range recipe.Items {
			qty := item.QtyPerPortion.Mul(portions)
			_, err := uc.stockLedger.RecordMovementInTx(ingredientRepo, movementRepo, ledger.RecordMovementInput{
				IngredientID:   item.IngredientID,
				Type:           entity.MovementOUT,
				Qty:            qty,
				ActorID:        actorID,
				Note:           fmt.Sprintf("produksi %s x%d porsi", recipe.Name, in.Portions),
				ReferenceTable: "productions",
				ReferenceID:    prod.ID,
			}, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prod, nil
}

// ListProductions listing catatan produksi terbaru dulu.
func (uc *ProductionUseCase) ListProductions(ctx context.Context, limit, offset int) ([]*entity.Production, error) {
	return uc.productionRepo.List(limit, offset)
}
