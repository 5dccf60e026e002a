package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/application/usecase"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/infrastructure/memory"
)

const testActorID = "00000000-0000-0000-0000-000000000001"

func newIngredientUC(t *testing.T) (*usecase.IngredientUseCase, *ledger.StockLedger, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	stockLedger := ledger.NewStockLedger(
		memory.NewTxRunner(store), store.Ingredients(), store.Movements(), ledger.Config{},
	)
	return usecase.NewIngredientUseCase(store.Ingredients(), stockLedger), stockLedger, store
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Stok awal bahan baru dicatat sebagai movement IN pertama, bukan ditulis langsung.
func TestIngredientCreate_StokAwalLewatLedger(t *testing.T) {
	uc, stockLedger, _ := newIngredientUC(t)

	ing, err := uc.Create(context.Background(), testActorID, dto.CreateIngredientRequest{
		Name:         "Beras",
		Unit:         "kg",
		MinimumStock: dec("10"),
		InitialStock: dec("50"),
	})
	require.NoError(t, err)
	assert.True(t, ing.CurrentStock.Equal(dec("50")))

	movements, err := stockLedger.ListMovements(context.Background(), ing.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, entity.MovementIN, movements[0].Type)
	assert.True(t, movements[0].BalanceBefore.Equal(decimal.Zero))
	assert.True(t, movements[0].BalanceAfter.Equal(dec("50")))
	assert.Equal(t, "stok awal", movements[0].Note)
}

func TestIngredientCreate_TanpaStokAwal(t *testing.T) {
	uc, stockLedger, _ := newIngredientUC(t)

	ing, err := uc.Create(context.Background(), testActorID, dto.CreateIngredientRequest{
		Name: "Garam", Unit: "kg",
	})
	require.NoError(t, err)
	assert.True(t, ing.CurrentStock.IsZero())

	movements, err := stockLedger.ListMovements(context.Background(), ing.ID, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestIngredientCreate_NamaDuplikat(t *testing.T) {
	uc, _, _ := newIngredientUC(t)

	_, err := uc.Create(context.Background(), testActorID, dto.CreateIngredientRequest{Name: "Gula", Unit: "kg"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), testActorID, dto.CreateIngredientRequest{Name: "Gula", Unit: "kg"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestIngredientCreate_NilaiNegatifDitolak(t *testing.T) {
	uc, _, _ := newIngredientUC(t)

	_, err := uc.Create(context.Background(), testActorID, dto.CreateIngredientRequest{
		Name: "Gula", Unit: "kg", MinimumStock: dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), testActorID, dto.CreateIngredientRequest{
		Name: "Gula", Unit: "kg", InitialStock: dec("-5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update tidak menyentuh stok walau payload lama membawa nilai stok.
func TestIngredientUpdate_StokTidakBerubah(t *testing.T) {
	uc, stockLedger, _ := newIngredientUC(t)

	ing, err := uc.Create(context.Background(), testActorID, dto.CreateIngredientRequest{
		Name: "Beras", Unit: "kg", InitialStock: dec("50"),
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), ing.ID, dto.UpdateIngredientRequest{
		Name: "Beras Premium", Unit: "kg", MinimumStock: dec("20"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Beras Premium", updated.Name)
	assert.True(t, updated.CurrentStock.Equal(dec("50")), "update katalog tidak mengubah stok")

	movements, err := stockLedger.ListMovements(context.Background(), ing.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, movements, 1, "tidak ada movement baru dari update katalog")
}

func TestIngredientGetDelete_TidakAda(t *testing.T) {
	uc, _, _ := newIngredientUC(t)

	_, err := uc.GetByID(context.Background(), "tidak-ada")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(context.Background(), "tidak-ada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
