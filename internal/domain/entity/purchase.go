package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status purchase order.
const (
	PurchaseDraft     = "draft"
	PurchaseOrdered   = "ordered"
	PurchaseReceived  = "received"
	PurchaseCancelled = "cancelled"
)

// Purchase purchase order bahan ke supplier.
type Purchase struct {
	ID           string
	Number       string // nomor PO, unik (PO-2026-0001)
	SupplierName string
	Status       string // draft, ordered, received, cancelled
	Items        []PurchaseItem
	Total        decimal.Decimal
	Note         string
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseItem satu baris bahan pada purchase order.
type PurchaseItem struct {
	ID           string
	PurchaseID   string
	IngredientID string
	Qty          decimal.Decimal // magnitude positif
	UnitPrice    decimal.Decimal
}

// Receipt bukti penerimaan barang untuk sebuah purchase.
// Dibuat saat konfirmasi penerimaan, satu transaksi dengan movement IN-nya.
type Receipt struct {
	ID         string
	PurchaseID string
	Note       string
	ReceivedBy string
	ReceivedAt time.Time
}
