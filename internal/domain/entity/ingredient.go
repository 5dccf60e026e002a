package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient merepresentasikan bahan baku dapur.
// CurrentStock hanya boleh berubah lewat StockLedger; nilainya selalu sama dengan
// BalanceAfter movement terakhir bahan tersebut.
type Ingredient struct {
	ID           string
	Name         string
	Unit         string          // kg, liter, pcs, dst.
	CurrentStock decimal.Decimal
	MinimumStock decimal.Decimal // ambang alert stok menipis
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock true jika stok saat ini sudah menyentuh ambang minimum.
func (i *Ingredient) IsLowStock() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinimumStock)
}
