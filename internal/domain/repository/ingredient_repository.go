package repository

import (
	"github.com/shopspring/decimal"

	"github.com/dapurgempita/gempita-api/internal/domain/entity"
)

// IngredientRepository port persistensi untuk Ingredient.
// GetForUpdate dipakai di dalam transaksi ledger untuk menutup lost update.
type IngredientRepository interface {
	Create(ingredient *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	GetByName(name string) (*entity.Ingredient, error)
	// GetForUpdate mengunci baris bahan (SELECT FOR UPDATE); nil jika tidak ada.
	GetForUpdate(id string) (*entity.Ingredient, error)
	// UpdateStock menulis current_stock baru. Hanya boleh dipanggil oleh ledger.
	UpdateStock(id string, stock decimal.Decimal) error
	Update(ingredient *entity.Ingredient) error
	List(limit, offset int) ([]*entity.Ingredient, error)
	// ListLowStock mengembalikan bahan dengan current_stock <= minimum_stock,
	// maksimal limit baris. Urutan antar baris yang seri tidak dijamin.
	ListLowStock(limit int) ([]*entity.Ingredient, error)
	Delete(id string) error
}
