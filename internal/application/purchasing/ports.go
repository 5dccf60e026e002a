package purchasing

import (
	"context"

	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

// TxRunner transaksi untuk alur pembelian: penerimaan barang menulis receipt,
// movement IN per item, dan status purchase dalam satu unit atomik.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
		purchaseRepo repository.PurchaseRepository,
		receiptRepo repository.ReceiptRepository,
	) error) error
}
