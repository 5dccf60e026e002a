package purchasing_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/application/purchasing"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/infrastructure/memory"
)

const testActorID = "00000000-0000-0000-0000-000000000001"

func newTestUseCase(t *testing.T) (*purchasing.PurchaseUseCase, *ledger.StockLedger, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	txRunner := memory.NewTxRunner(store)
	stockLedger := ledger.NewStockLedger(txRunner, store.Ingredients(), store.Movements(), ledger.Config{})
	uc := purchasing.NewPurchaseUseCase(txRunner, stockLedger, store.Purchases(), store.Ingredients())
	return uc, stockLedger, store
}

func seedIngredient(t *testing.T, store *memory.Store, name, stock string) *entity.Ingredient {
	t.Helper()
	ing := &entity.Ingredient{
		Name:         name,
		Unit:         "kg",
		CurrentStock: decimal.RequireFromString(stock),
		MinimumStock: decimal.NewFromInt(1),
	}
	require.NoError(t, store.Ingredients().Create(ing))
	return ing
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreatePurchase_DraftDenganTotal(t *testing.T) {
	uc, _, store := newTestUseCase(t)
	beras := seedIngredient(t, store, "Beras", "10")
	minyak := seedIngredient(t, store, "Minyak", "5")

	purchase, err := uc.CreatePurchase(context.Background(), testActorID, dto.CreatePurchaseRequest{
		SupplierName: "CV Sumber Pangan",
		Items: []dto.PurchaseItemRequest{
			{IngredientID: beras.ID, Qty: dec("25"), UnitPrice: dec("12000")},
			{IngredientID: minyak.ID, Qty: dec("10"), UnitPrice: dec("17500")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PurchaseDraft, purchase.Status)
	assert.True(t, strings.HasPrefix(purchase.Number, "PO-"), "nomor PO diawali PO-")
	assert.True(t, purchase.Total.Equal(dec("475000")), "25x12000 + 10x17500")
	assert.Len(t, purchase.Items, 2)

	// Membuat PO belum boleh menyentuh stok.
	after, err := store.Ingredients().GetByID(beras.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("10")))
}

func TestCreatePurchase_Validasi(t *testing.T) {
	uc, _, store := newTestUseCase(t)
	beras := seedIngredient(t, store, "Beras", "10")

	_, err := uc.CreatePurchase(context.Background(), testActorID, dto.CreatePurchaseRequest{
		SupplierName: "CV A", Items: nil,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "PO tanpa item ditolak")

	_, err = uc.CreatePurchase(context.Background(), testActorID, dto.CreatePurchaseRequest{
		SupplierName: "CV A",
		Items:        []dto.PurchaseItemRequest{{IngredientID: beras.ID, Qty: dec("0"), UnitPrice: dec("100")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "qty nol ditolak")

	_, err = uc.CreatePurchase(context.Background(), testActorID, dto.CreatePurchaseRequest{
		SupplierName: "CV A",
		Items:        []dto.PurchaseItemRequest{{IngredientID: "tidak-ada", Qty: dec("1"), UnitPrice: dec("100")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "bahan tidak dikenal ditolak")
}

func TestConfirmReceipt_MenambahStokPerItem(t *testing.T) {
	uc, stockLedger, store := newTestUseCase(t)
	beras := seedIngredient(t, store, "Beras", "10")
	minyak := seedIngredient(t, store, "Minyak", "5")

	purchase, err := uc.CreatePurchase(context.Background(), testActorID, dto.CreatePurchaseRequest{
		SupplierName: "CV Sumber Pangan",
		Items: []dto.PurchaseItemRequest{
			{IngredientID: beras.ID, Qty: dec("25"), UnitPrice: dec("12000")},
			{IngredientID: minyak.ID, Qty: dec("10"), UnitPrice: dec("17500")},
		},
	})
	require.NoError(t, err)
	require.NoError(t, uc.MarkOrdered(context.Background(), purchase.ID))

	receipt, err := uc.ConfirmReceipt(context.Background(), purchase.ID, testActorID, "lengkap")
	require.NoError(t, err)
	assert.Equal(t, purchase.ID, receipt.PurchaseID)

	got, err := uc.GetPurchase(context.Background(), purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseReceived, got.Status)

	afterBeras, err := store.Ingredients().GetByID(beras.ID)
	require.NoError(t, err)
	assert.True(t, afterBeras.CurrentStock.Equal(dec("35")))
	afterMinyak, err := store.Ingredients().GetByID(minyak.ID)
	require.NoError(t, err)
	assert.True(t, afterMinyak.CurrentStock.Equal(dec("15")))

	// Tiap item punya movement IN dengan referensi ke PO-nya.
	movements, err := stockLedger.ListMovements(context.Background(), "", 20, 0)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	for _, m := range movements {
		assert.Equal(t, entity.MovementIN, m.Type)
		assert.Equal(t, "purchases", m.ReferenceTable)
		assert.Equal(t, purchase.ID, m.ReferenceID)
	}
}

func TestConfirmReceipt_HanyaStatusOrdered(t *testing.T) {
	uc, _, store := newTestUseCase(t)
	beras := seedIngredient(t, store, "Beras", "10")

	purchase, err := uc.CreatePurchase(context.Background(), testActorID, dto.CreatePurchaseRequest{
		SupplierName: "CV A",
		Items:        []dto.PurchaseItemRequest{{IngredientID: beras.ID, Qty: dec("5"), UnitPrice: dec("1000")}},
	})
	require.NoError(t, err)

	// Masih draft -> ditolak, stok tidak berubah.
	_, err = uc.ConfirmReceipt(context.Background(), purchase.ID, testActorID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	after, err := store.Ingredients().GetByID(beras.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("10")))

	// Setelah received, konfirmasi kedua juga ditolak (tidak dobel).
	require.NoError(t, uc.MarkOrdered(context.Background(), purchase.ID))
	_, err = uc.ConfirmReceipt(context.Background(), purchase.ID, testActorID, "")
	require.NoError(t, err)
	_, err = uc.ConfirmReceipt(context.Background(), purchase.ID, testActorID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	after, err = store.Ingredients().GetByID(beras.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("15")), "stok hanya bertambah sekali")
}

func TestConfirmReceipt_PurchaseTidakAda(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	_, err := uc.ConfirmReceipt(context.Background(), "tidak-ada", testActorID, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkOrdered_HanyaDariDraft(t *testing.T) {
	uc, _, store := newTestUseCase(t)
	beras := seedIngredient(t, store, "Beras", "10")

	purchase, err := uc.CreatePurchase(context.Background(), testActorID, dto.CreatePurchaseRequest{
		SupplierName: "CV A",
		Items:        []dto.PurchaseItemRequest{{IngredientID: beras.ID, Qty: dec("5"), UnitPrice: dec("1000")}},
	})
	require.NoError(t, err)

	require.NoError(t, uc.MarkOrdered(context.Background(), purchase.ID))
	assert.ErrorIs(t, uc.MarkOrdered(context.Background(), purchase.ID), domain.ErrInvalidInput,
		"ordered tidak bisa di-order ulang")
	assert.ErrorIs(t, uc.MarkOrdered(context.Background(), "tidak-ada"), domain.ErrNotFound)
}

func TestListPurchases_FilterStatus(t *testing.T) {
	uc, _, store := newTestUseCase(t)
	beras := seedIngredient(t, store, "Beras", "10")

	for i := 0; i < 3; i++ {
		p, err := uc.CreatePurchase(context.Background(), testActorID, dto.CreatePurchaseRequest{
			SupplierName: "CV A",
			Items:        []dto.PurchaseItemRequest{{IngredientID: beras.ID, Qty: dec("1"), UnitPrice: dec("500")}},
		})
		require.NoError(t, err)
		if i == 0 {
			require.NoError(t, uc.MarkOrdered(context.Background(), p.ID))
		}
	}

	drafts, err := uc.ListPurchases(context.Background(), entity.PurchaseDraft, 20, 0)
	require.NoError(t, err)
	assert.Len(t, drafts, 2)

	ordered, err := uc.ListPurchases(context.Background(), entity.PurchaseOrdered, 20, 0)
	require.NoError(t, err)
	assert.Len(t, ordered, 1)
}
