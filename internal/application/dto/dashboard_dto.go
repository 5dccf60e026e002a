package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO ringkasan operasional untuk halaman dashboard.
type DashboardSummaryDTO struct {
	LowStock           []LowStockItem  `json:"low_stock"`
	MovementsToday     int             `json:"movements_today"`
	PurchasesThisMonth int             `json:"purchases_this_month"`
	PurchaseTotalMonth decimal.Decimal `json:"purchase_total_this_month"`
	ProductionsToday   int             `json:"productions_today"`
}
