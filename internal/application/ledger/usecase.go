package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

const defaultLowStockLimit = 5

// Config kebijakan ledger.
// AllowNegativeStock=false menolak movement yang membuat saldo negatif
// dengan ErrInsufficientStock; true mengizinkan saldo negatif transien.
type Config struct {
	AllowNegativeStock bool
}

// StockLedger satu-satunya otoritas yang boleh mengubah Ingredient.CurrentStock.
// Setiap perubahan stok dicatat sebagai StockMovement append-only dengan
// balance_before/balance_after, dalam satu transaksi dengan update stoknya.
// Baris ingredient dikunci (SELECT FOR UPDATE) selama read-modify-write
// sehingga dua movement concurrent pada bahan yang sama terserialisasi.
type StockLedger struct {
	txRunner       TxRunner
	ingredientRepo repository.IngredientRepository
	movementRepo   repository.StockMovementRepository
	cfg            Config
}

// NewStockLedger membangun ledger. ingredientRepo dan movementRepo dipakai untuk
// query read-only di luar transaksi; penulisan selalu lewat txRunner.
func NewStockLedger(
	txRunner TxRunner,
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	cfg Config,
) *StockLedger {
	return &StockLedger{
		txRunner:       txRunner,
		ingredientRepo: ingredientRepo,
		movementRepo:   movementRepo,
		cfg:            cfg,
	}
}

// RecordMovementInput input untuk mencatat satu movement.
// Qty wajib magnitude positif; tipe (+ direction untuk ADJUST) menentukan arah.
type RecordMovementInput struct {
	IngredientID   string
	Type           entity.MovementType
	Qty            decimal.Decimal
	Direction      entity.AdjustDirection
	ActorID        string
	Note           string
	ReferenceTable string
	ReferenceID    string
}

// RecordMovement mencatat satu movement stok secara atomik.
//
// Di dalam transaksi: kunci baris bahan, baca stok sebagai balance_before,
// hitung balance_after dari delta bertanda, tulis stok baru, append movement.
// Gagal dengan ErrNotFound jika bahan tidak ada, ErrInvalidQuantity jika
// qty <= 0, ErrInsufficientStock jika hasilnya negatif dan kebijakan melarang.
// Jika transaksi gagal, tidak ada yang ter-persist (all-or-nothing, tanpa retry).
func (uc *StockLedger) RecordMovement(ctx context.Context, input RecordMovementInput) (*entity.StockMovement, error) {
	delta, err := entity.SignedDelta(input.Type, input.Qty, input.Direction)
	if err != nil {
		return nil, err
	}

	var created *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		ingredientRepo repository.IngredientRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		mov, err := uc.appendMovement(ingredientRepo, movementRepo, input, delta, time.Now())
		if err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordMovementInTx mencatat movement memakai repositori milik transaksi caller
// (purchasing/production). Validasi dan invariannya sama dengan RecordMovement;
// commit/rollback menjadi tanggung jawab transaksi pemanggil.
func (uc *StockLedger) RecordMovementInTx(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	input RecordMovementInput,
	now time.Time,
) (*entity.StockMovement, error) {
	delta, err := entity.SignedDelta(input.Type, input.Qty, input.Direction)
	if err != nil {
		return nil, err
	}
	return uc.appendMovement(ingredientRepo, movementRepo, input, delta, now)
}

// appendMovement inti read-modify-write ledger. Harus berjalan di dalam transaksi;
// GetForUpdate mengunci baris bahan sampai commit.
func (uc *StockLedger) appendMovement(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	input RecordMovementInput,
	delta decimal.Decimal,
	now time.Time,
) (*entity.StockMovement, error) {
	ing, err := ingredientRepo.GetForUpdate(input.IngredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}

	balanceBefore := ing.CurrentStock
	balanceAfter := balanceBefore.Add(delta)
	if balanceAfter.IsNegative() && !uc.cfg.AllowNegativeStock {
		return nil, domain.ErrInsufficientStock
	}

	if err := ingredientRepo.UpdateStock(ing.ID, balanceAfter); err != nil {
		return nil, err
	}

	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		IngredientID:   ing.ID,
		Type:           input.Type,
		Qty:            delta,
		BalanceBefore:  balanceBefore,
		BalanceAfter:   balanceAfter,
		Note:           input.Note,
		ReferenceTable: input.ReferenceTable,
		ReferenceID:    input.ReferenceID,
		CreatedBy:      input.ActorID,
		CreatedAt:      now,
	}
	if err := movementRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// GetLowStock mengembalikan bahan dengan current_stock <= minimum_stock,
// maksimal limit baris (default 5). Read-only.
func (uc *StockLedger) GetLowStock(ctx context.Context, limit int) ([]*entity.Ingredient, error) {
	if limit <= 0 {
		limit = defaultLowStockLimit
	}
	return uc.ingredientRepo.ListLowStock(limit)
}

// ListMovements mengembalikan movement terbaru dulu, opsional difilter per bahan.
// Read-only.
func (uc *StockLedger) ListMovements(ctx context.Context, ingredientID string, limit, offset int) ([]*entity.StockMovement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movementRepo.List(ingredientID, limit, offset)
}
