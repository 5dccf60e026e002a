package production

import (
	"context"

	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

// TxRunner transaksi untuk alur produksi: catatan produksi dan movement OUT
// seluruh bahan resep commit bersama atau tidak sama sekali.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
		productionRepo repository.ProductionRepository,
	) error) error
}
