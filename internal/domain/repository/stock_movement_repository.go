package repository

import "github.com/dapurgempita/gempita-api/internal/domain/entity"

// StockMovementRepository port persistensi untuk ledger movement (append-only).
// Tidak ada Update/Delete: koreksi selalu berupa movement ADJUST baru.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List mengembalikan movement terbaru dulu. ingredientID kosong = semua bahan.
	List(ingredientID string, limit, offset int) ([]*entity.StockMovement, error)
}
