package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/infrastructure/memory"
)

const testActorID = "00000000-0000-0000-0000-000000000001"

// newTestLedger membangun ledger di atas store in-memory.
func newTestLedger(t *testing.T, allowNegative bool) (*ledger.StockLedger, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := ledger.NewStockLedger(
		memory.NewTxRunner(store),
		store.Ingredients(),
		store.Movements(),
		ledger.Config{AllowNegativeStock: allowNegative},
	)
	return uc, store
}

// seedIngredient menanam bahan dengan stok awal langsung di store.
func seedIngredient(t *testing.T, store *memory.Store, name, stock, min string) *entity.Ingredient {
	t.Helper()
	ing := &entity.Ingredient{
		Name:         name,
		Unit:         "kg",
		CurrentStock: dec(stock),
		MinimumStock: dec(min),
	}
	require.NoError(t, store.Ingredients().Create(ing))
	return ing
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Movement IN menambah stok dan mencatat saldo sebelum/sesudah.
func TestRecordMovement_INMenambahStok(t *testing.T) {
	uc, store := newTestLedger(t, false)
	ing := seedIngredient(t, store, "Beras", "10", "5")

	mov, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
		IngredientID: ing.ID,
		Type:         entity.MovementIN,
		Qty:          dec("20"),
		ActorID:      testActorID,
		Note:         "penerimaan supplier",
	})
	require.NoError(t, err)

	assert.True(t, mov.BalanceBefore.Equal(dec("10")), "balance_before harus stok sebelum movement")
	assert.True(t, mov.BalanceAfter.Equal(dec("30")), "balance_after = before + qty")
	assert.True(t, mov.Qty.Equal(dec("20")))
	assert.Equal(t, entity.MovementIN, mov.Type)
	assert.Equal(t, testActorID, mov.CreatedBy)

	after, err := store.Ingredients().GetByID(ing.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("30")), "stok bahan harus ikut berubah")
}

// Movement OUT mengurangi stok; bahan yang jatuh ke ambang minimum muncul di low stock.
func TestRecordMovement_OUTMengurangiStokDanLowStock(t *testing.T) {
	uc, store := newTestLedger(t, false)
	ing := seedIngredient(t, store, "Minyak", "30", "10")

	mov, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
		IngredientID: ing.ID,
		Type:         entity.MovementOUT,
		Qty:          dec("25"),
		ActorID:      testActorID,
	})
	require.NoError(t, err)

	assert.True(t, mov.Qty.Equal(dec("-25")), "qty OUT tersimpan sebagai delta negatif")
	assert.True(t, mov.BalanceAfter.Equal(dec("5")))

	low, err := uc.GetLowStock(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, low, 1, "bahan dengan stok 5 <= minimum 10 harus masuk low stock")
	assert.Equal(t, ing.ID, low[0].ID)
}

// ADJUST arah minus mengurangi stok; arah default (kosong) menambah.
func TestRecordMovement_ADJUSTDuaArah(t *testing.T) {
	uc, store := newTestLedger(t, false)
	ing := seedIngredient(t, store, "Gula", "12", "2")

	_, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
		IngredientID: ing.ID,
		Type:         entity.MovementADJUST,
		Direction:    entity.AdjustMinus,
		Qty:          dec("2"),
		ActorID:      testActorID,
		Note:         "koreksi opname",
	})
	require.NoError(t, err)

	_, err = uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
		IngredientID: ing.ID,
		Type:         entity.MovementADJUST,
		Qty:          dec("1.5"),
		ActorID:      testActorID,
	})
	require.NoError(t, err)

	after, err := store.Ingredients().GetByID(ing.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("11.5")), "12 - 2 + 1.5 = 11.5")
}

// Qty nol atau negatif ditolak tanpa menyentuh stok maupun ledger.
func TestRecordMovement_QtyNolDitolak(t *testing.T) {
	uc, store := newTestLedger(t, false)
	ing := seedIngredient(t, store, "Tepung", "10", "2")

	for _, qty := range []string{"0", "-3"} {
		_, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
			IngredientID: ing.ID,
			Type:         entity.MovementOUT,
			Qty:          dec(qty),
			ActorID:      testActorID,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "qty %s harus ditolak", qty)
	}

	after, err := store.Ingredients().GetByID(ing.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("10")), "stok tidak boleh berubah")

	movements, err := uc.ListMovements(context.Background(), ing.ID, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, movements, "tidak boleh ada entri ledger")
}

// Bahan tidak dikenal -> ErrNotFound, ledger tetap kosong.
func TestRecordMovement_BahanTidakAda(t *testing.T) {
	uc, _ := newTestLedger(t, false)

	_, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
		IngredientID: "99999999-9999-9999-9999-999999999999",
		Type:         entity.MovementIN,
		Qty:          dec("5"),
		ActorID:      testActorID,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	movements, err := uc.ListMovements(context.Background(), "", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

// Kebijakan default: movement yang membuat saldo negatif ditolak utuh.
func TestRecordMovement_StokKurangDitolak(t *testing.T) {
	uc, store := newTestLedger(t, false)
	ing := seedIngredient(t, store, "Ayam", "5", "2")

	_, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
		IngredientID: ing.ID,
		Type:         entity.MovementOUT,
		Qty:          dec("8"),
		ActorID:      testActorID,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	after, err := store.Ingredients().GetByID(ing.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("5")), "stok tidak boleh berubah saat ditolak")
}

// Kebijakan longgar: saldo negatif transien diizinkan dan tercatat apa adanya.
func TestRecordMovement_SaldoNegatifDiizinkan(t *testing.T) {
	uc, store := newTestLedger(t, true)
	ing := seedIngredient(t, store, "Ayam", "5", "2")

	mov, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
		IngredientID: ing.ID,
		Type:         entity.MovementOUT,
		Qty:          dec("8"),
		ActorID:      testActorID,
	})
	require.NoError(t, err)
	assert.True(t, mov.BalanceAfter.Equal(dec("-3")))

	after, err := store.Ingredients().GetByID(ing.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("-3")))
}

// Dua OUT concurrent pada bahan yang sama terserialisasi: dengan kebijakan
// default hanya satu yang lolos, tidak ada lost update.
func TestRecordMovement_ConcurrentOUT_KebijakanDefault(t *testing.T) {
	uc, store := newTestLedger(t, false)
	ing := seedIngredient(t, store, "Cabai", "5", "1")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
				IngredientID: ing.ID,
				Type:         entity.MovementOUT,
				Qty:          dec("4"),
				ActorID:      testActorID,
			})
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case err == domain.ErrInsufficientStock:
			insufficient++
		default:
			t.Fatalf("error tak terduga: %v", err)
		}
	}
	assert.Equal(t, 1, ok, "tepat satu OUT yang berhasil")
	assert.Equal(t, 1, insufficient, "yang satunya ditolak karena stok kurang")

	after, err := store.Ingredients().GetByID(ing.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("1")), "5 - 4 = 1, tanpa lost update")

	movements, err := uc.ListMovements(context.Background(), ing.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, movements, 1)
}

// Dengan saldo negatif diizinkan, kedua OUT concurrent tercatat dan rantai
// saldonya tetap nyambung (balance_before movement kedua = balance_after pertama).
func TestRecordMovement_ConcurrentOUT_SaldoNegatifDiizinkan(t *testing.T) {
	uc, store := newTestLedger(t, true)
	ing := seedIngredient(t, store, "Cabai", "5", "1")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
				IngredientID: ing.ID,
				Type:         entity.MovementOUT,
				Qty:          dec("4"),
				ActorID:      testActorID,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	after, err := store.Ingredients().GetByID(ing.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("-3")), "5 - 4 - 4 = -3")

	movements, err := uc.ListMovements(context.Background(), ing.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	// List terbaru dulu: movements[1] terjadi lebih dulu.
	assert.True(t, movements[0].BalanceBefore.Equal(movements[1].BalanceAfter),
		"rantai saldo antar movement harus nyambung")
}

// Konservasi: stok akhir = stok awal + jumlah seluruh delta, setiap entri
// memenuhi balance_after = balance_before + qty, dan stok bahan sama dengan
// balance_after movement terakhirnya.
func TestLedger_Konservasi(t *testing.T) {
	uc, store := newTestLedger(t, false)
	ing := seedIngredient(t, store, "Beras", "50", "10")

	inputs := []ledger.RecordMovementInput{
		{IngredientID: ing.ID, Type: entity.MovementIN, Qty: dec("15"), ActorID: testActorID},
		{IngredientID: ing.ID, Type: entity.MovementOUT, Qty: dec("22.5"), ActorID: testActorID},
		{IngredientID: ing.ID, Type: entity.MovementADJUST, Direction: entity.AdjustMinus, Qty: dec("0.5"), ActorID: testActorID},
		{IngredientID: ing.ID, Type: entity.MovementOUT, Qty: dec("7"), ActorID: testActorID},
		{IngredientID: ing.ID, Type: entity.MovementIN, Qty: dec("3"), ActorID: testActorID},
	}
	for _, in := range inputs {
		_, err := uc.RecordMovement(context.Background(), in)
		require.NoError(t, err)
	}

	movements, err := uc.ListMovements(context.Background(), ing.ID, 100, 0)
	require.NoError(t, err)
	require.Len(t, movements, len(inputs))

	sum := decimal.Zero
	for _, m := range movements {
		assert.True(t, m.BalanceAfter.Equal(m.BalanceBefore.Add(m.Qty)),
			"setiap entri harus memenuhi balance_after = balance_before + qty")
		sum = sum.Add(m.Qty)
	}

	after, err := store.Ingredients().GetByID(ing.ID)
	require.NoError(t, err)
	assert.True(t, after.CurrentStock.Equal(dec("50").Add(sum)),
		"stok akhir = stok awal + total delta")
	assert.True(t, after.CurrentStock.Equal(movements[0].BalanceAfter),
		"stok bahan = balance_after movement terakhir")
}

// Pembacaan tidak mengubah apa pun: dua kali baca memberi hasil sama.
func TestLedger_PembacaanIdempoten(t *testing.T) {
	uc, store := newTestLedger(t, false)
	ing := seedIngredient(t, store, "Minyak", "9", "10")

	_, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
		IngredientID: ing.ID, Type: entity.MovementIN, Qty: dec("1"), ActorID: testActorID,
	})
	require.NoError(t, err)

	first, err := uc.ListMovements(context.Background(), ing.ID, 20, 0)
	require.NoError(t, err)
	second, err := uc.ListMovements(context.Background(), ing.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lowFirst, err := uc.GetLowStock(context.Background(), 5)
	require.NoError(t, err)
	lowSecond, err := uc.GetLowStock(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, lowFirst, lowSecond)
}

// Limit low stock: default 5, dan limit eksplisit dihormati.
func TestGetLowStock_Limit(t *testing.T) {
	uc, store := newTestLedger(t, false)
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for _, n := range names {
		seedIngredient(t, store, n, "1", "10")
	}

	low, err := uc.GetLowStock(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, low, 5, "limit default 5")

	low, err = uc.GetLowStock(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, low, 2)
}

// Filter per bahan dan paginasi pada listing movement.
func TestListMovements_FilterDanPaginasi(t *testing.T) {
	uc, store := newTestLedger(t, false)
	beras := seedIngredient(t, store, "Beras", "100", "10")
	gula := seedIngredient(t, store, "Gula", "100", "10")

	for i := 0; i < 3; i++ {
		_, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
			IngredientID: beras.ID, Type: entity.MovementOUT, Qty: dec("1"), ActorID: testActorID,
		})
		require.NoError(t, err)
	}
	_, err := uc.RecordMovement(context.Background(), ledger.RecordMovementInput{
		IngredientID: gula.ID, Type: entity.MovementOUT, Qty: dec("1"), ActorID: testActorID,
	})
	require.NoError(t, err)

	all, err := uc.ListMovements(context.Background(), "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	onlyBeras, err := uc.ListMovements(context.Background(), beras.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, onlyBeras, 3)
	for _, m := range onlyBeras {
		assert.Equal(t, beras.ID, m.IngredientID)
	}

	paged, err := uc.ListMovements(context.Background(), beras.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, paged, 1, "offset 2 dari 3 entri menyisakan 1")
}
