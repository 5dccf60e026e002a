package ledger

import (
	"context"

	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

// TxRunner menjalankan fn di dalam satu transaksi DB dengan repositori yang
// terikat ke transaksi tersebut. Menjamin atomisitas update stok + append movement:
// keduanya commit bersama atau tidak sama sekali.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
