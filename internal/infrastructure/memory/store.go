// Package memory menyediakan implementasi in-memory dari port repository,
// dipakai untuk test use case tanpa PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/application/production"
	"github.com/dapurgempita/gempita-api/internal/application/purchasing"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

// Store menyimpan seluruh data di memori, thread-safe.
// Transaksi diserialisasi lewat txMu; rollback dilakukan dengan
// mengembalikan snapshot data yang diambil sebelum callback berjalan.
type Store struct {
	mu          sync.Mutex
	ingredients map[string]entity.Ingredient
	movements   []entity.StockMovement
	purchases   map[string]entity.Purchase
	receipts    map[string]entity.Receipt
	productions map[string]entity.Production
	recipes     map[string]entity.Recipe
	users       map[string]entity.User

	txMu sync.Mutex
}

// NewStore membuat store kosong.
func NewStore() *Store {
	return &Store{
		ingredients: make(map[string]entity.Ingredient),
		purchases:   make(map[string]entity.Purchase),
		receipts:    make(map[string]entity.Receipt),
		productions: make(map[string]entity.Production),
		recipes:     make(map[string]entity.Recipe),
		users:       make(map[string]entity.User),
	}
}

// Repo accessor untuk dipakai di luar transaksi.
func (s *Store) Ingredients() repository.IngredientRepository  { return &ingredientRepo{s} }
func (s *Store) Movements() repository.StockMovementRepository { return &movementRepo{s} }
func (s *Store) Purchases() repository.PurchaseRepository      { return &purchaseRepo{s} }
func (s *Store) Receipts() repository.ReceiptRepository        { return &receiptRepo{s} }
func (s *Store) Productions() repository.ProductionRepository  { return &productionRepo{s} }
func (s *Store) Recipes() repository.RecipeRepository          { return &recipeRepo{s} }
func (s *Store) Users() repository.UserRepository              { return &userRepo{s} }

// TxRunner runner transaksi in-memory di atas Store.
// Satu transaksi berjalan pada satu waktu (ekuivalen serializable);
// error dari callback mengembalikan store ke snapshot sebelum transaksi.
type TxRunner struct {
	store *Store
}

var _ ledger.TxRunner = (*TxRunner)(nil)
var _ purchasing.TxRunner = (*TxRunner)(nil)
var _ production.TxRunner = (*TxRunner)(nil)

// NewTxRunner membangun runner untuk store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run menjalankan fn atomik terhadap store.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return r.inTx(func() error {
		return fn(r.store.Ingredients(), r.store.Movements())
	})
}

// RunPurchase menjalankan fn atomik dengan repo pembelian.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	purchaseRepo repository.PurchaseRepository,
	receiptRepo repository.ReceiptRepository,
) error) error {
	return r.inTx(func() error {
		return fn(r.store.Ingredients(), r.store.Movements(), r.store.Purchases(), r.store.Receipts())
	})
}

// RunProduction menjalankan fn atomik dengan repo produksi.
func (r *TxRunner) RunProduction(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	movementRepo repository.StockMovementRepository,
	productionRepo repository.ProductionRepository,
) error) error {
	return r.inTx(func() error {
		return fn(r.store.Ingredients(), r.store.Movements(), r.store.Productions())
	})
}

func (r *TxRunner) inTx(fn func() error) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()

	snap := r.store.snapshot()
	if err := fn(); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

type storeSnapshot struct {
	ingredients map[string]entity.Ingredient
	movements   []entity.StockMovement
	purchases   map[string]entity.Purchase
	receipts    map[string]entity.Receipt
	productions map[string]entity.Production
	recipes     map[string]entity.Recipe
	users       map[string]entity.User
}

func (s *Store) snapshot() storeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storeSnapshot{
		ingredients: cloneMap(s.ingredients),
		movements:   append([]entity.StockMovement(nil), s.movements...),
		purchases:   cloneMap(s.purchases),
		receipts:    cloneMap(s.receipts),
		productions: cloneMap(s.productions),
		recipes:     cloneMap(s.recipes),
		users:       cloneMap(s.users),
	}
}

func (s *Store) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ingredients = snap.ingredients
	s.movements = snap.movements
	s.purchases = snap.purchases
	s.receipts = snap.receipts
	s.productions = snap.productions
	s.recipes = snap.recipes
	s.users = snap.users
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
