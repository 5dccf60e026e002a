package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseMetrics agregat pembelian dalam satu rentang tanggal.
type PurchaseMetrics struct {
	Count int
	Total decimal.Decimal
}

// AnalyticsRepository query read-only untuk dashboard.
// Implementasi tidak boleh memodifikasi data.
type AnalyticsRepository interface {
	// CountMovements jumlah movement stok dalam rentang waktu.
	CountMovements(ctx context.Context, start, end time.Time) (int, error)
	// GetPurchaseMetrics jumlah dan total purchase berstatus received dalam rentang.
	// COALESCE ke nol jika tidak ada pembelian di periode tersebut.
	GetPurchaseMetrics(ctx context.Context, start, end time.Time) (PurchaseMetrics, error)
	// CountProductions jumlah catatan produksi dalam rentang waktu.
	CountProductions(ctx context.Context, start, end time.Time) (int, error)
}
