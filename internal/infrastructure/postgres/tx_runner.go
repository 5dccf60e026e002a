package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/application/production"
	"github.com/dapurgempita/gempita-api/internal/application/purchasing"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

// Pastikan TxRunner memenuhi port transaksi ledger, purchasing, dan production.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ purchasing.TxRunner = (*TxRunner)(nil)
var _ production.TxRunner = (*TxRunner)(nil)

// TxRunner menjalankan callback di dalam transaksi PostgreSQL.
// Kegagalan serialisasi dipetakan ke domain.ErrConcurrencyConflict agar caller
// bisa mengulang seluruh operasi.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner membangun runner dari pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run memulai transaksi, menjalankan fn dengan repo terikat tx, lalu Commit
// atau Rollback. Tidak ada partial write yang bisa terlihat dari luar.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(NewIngredientRepository(q), NewStockMovementRepository(q))
	})
}

// RunPurchase transaksi dengan repo pembelian (untuk ConfirmReceipt).
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	purchaseRepo repository.PurchaseRepository,
	receiptRepo repository.ReceiptRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(
			NewIngredientRepository(q),
			NewStockMovementRepository(q),
			NewPurchaseRepository(q),
			NewReceiptRepository(q),
		)
	})
}

// RunProduction transaksi dengan repo produksi (untuk RecordProduction).
func (r *TxRunner) RunProduction(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	productionRepo repository.ProductionRepository,
) error) error {
	return r.inTx(ctx, func(q Querier) error {
		return fn(
			NewIngredientRepository(q),
			NewStockMovementRepository(q),
			NewProductionRepository(q),
		)
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		if isSerializationFailure(err) {
			return domain.ErrConcurrencyConflict
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return domain.ErrConcurrencyConflict
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
