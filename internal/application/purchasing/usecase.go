package purchasing

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

// PurchaseUseCase alur pembelian bahan: buat PO, tandai ordered, konfirmasi
// penerimaan. Penerimaan memanggil ledger untuk movement IN per item di dalam
// transaksi yang sama dengan receipt dan perubahan status PO.
type PurchaseUseCase struct {
	txRunner       TxRunner
	stockLedger    *ledger.StockLedger
	purchaseRepo   repository.PurchaseRepository
	ingredientRepo repository.IngredientRepository
}

// NewPurchaseUseCase membangun use case pembelian.
func NewPurchaseUseCase(
	txRunner TxRunner,
	stockLedger *ledger.StockLedger,
	purchaseRepo repository.PurchaseRepository,
	ingredientRepo repository.IngredientRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:       txRunner,
		stockLedger:    stockLedger,
		purchaseRepo:   purchaseRepo,
		ingredientRepo: ingredientRepo,
	}
}

// CreatePurchase membuat PO berstatus draft. Semua bahan divalidasi ada
// dan qty tiap item harus positif.
func (uc *PurchaseUseCase) CreatePurchase(ctx context.Context, actorID string, in dto.CreatePurchaseRequest) (*entity.Purchase, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	purchaseID := uuid.New().String()
	total := decimal.Zero
	items := make([]entity.PurchaseItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Qty.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidQuantity
		}
		if it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		ing, err := uc.ingredientRepo.GetByID(it.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.PurchaseItem{
			ID:           uuid.New().String(),
			PurchaseID:   purchaseID,
			IngredientID: it.IngredientID,
			Qty:          it.Qty,
			UnitPrice:    it.UnitPrice,
		})
		total = total.Add(it.Qty.Mul(it.UnitPrice))
	}

	purchase := &entity.Purchase{
		ID:           purchaseID,
		Number:       generateNumber(now),
		SupplierName: in.SupplierName,
		Status:       entity.PurchaseDraft,
		Items:        items,
		Total:        total,
		Note:         in.Note,
		CreatedBy:    actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// MarkOrdered memindahkan PO dari draft ke ordered.
func (uc *PurchaseUseCase) MarkOrdered(ctx context.Context, id string) error {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return domain.ErrNotFound
	}
	if purchase.Status != entity.PurchaseDraft {
		return domain.ErrInvalidInput
	}
	return uc.purchaseRepo.UpdateStatus(id, entity.PurchaseOrdered)
}

// ConfirmReceipt mencatat penerimaan barang untuk PO berstatus ordered.
//
// Satu transaksi: kunci baris purchase, insert receipt, movement IN per item
// lewat ledger (referensi {purchases, purchaseID}), lalu status jadi received.
// Jika satu item gagal, seluruh penerimaan dibatalkan.
func (uc *PurchaseUseCase) ConfirmReceipt(ctx context.Context, purchaseID, actorID, note string) (*entity.Receipt, error) {
	now := time.Now()
	receipt := &entity.Receipt{
		ID:         uuid.New().String(),
		PurchaseID: purchaseID,
		Note:       note,
		ReceivedBy: actorID,
		ReceivedAt: now,
	}

	err := uc.txRunner.RunPurchase(ctx, func(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
		purchaseRepo repository.PurchaseRepository,
		receiptRepo repository.ReceiptRepository,
	) error {
		purchase, err := purchaseRepo.GetForUpdate(purchaseID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		if purchase.Status != entity.PurchaseOrdered {
			return domain.ErrInvalidInput
		}

		if err := receiptRepo.Create(receipt); err != nil {
			return err
		}
		for _, item := range purchase.Items {
			_, err := uc.stockLedger.RecordMovementInTx(ingredientRepo, movementRepo, ledger.RecordMovementInput{
				IngredientID:   item.IngredientID,
				Type:           entity.MovementIN,
				Qty:            item.Qty,
				ActorID:        actorID,
				Note:           fmt.Sprintf("penerimaan PO %s", purchase.Number),
				ReferenceTable: "purchases",
				ReferenceID:    purchase.ID,
			}, now)
			if err != nil {
				return err
			}
		}
		return purchaseRepo.UpdateStatus(purchaseID, entity.PurchaseReceived)
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetPurchase mengambil satu PO beserta item.
func (uc *PurchaseUseCase) GetPurchase(ctx context.Context, id string) (*entity.Purchase, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	return purchase, nil
}

// ListPurchases listing PO, opsional difilter status.
func (uc *PurchaseUseCase) ListPurchases(ctx context.Context, status string, limit, offset int) ([]*entity.Purchase, error) {
	return uc.purchaseRepo.List(status, limit, offset)
}

// generateNumber nomor PO berbasis waktu, cukup unik untuk satu dapur.
func generateNumber(now time.Time) string {
	return fmt.Sprintf("PO-%s-%s", now.Format("20060102"), uuid.New().String()[:8])
}
