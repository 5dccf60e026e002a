package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest satu baris bahan pada pembuatan PO.
type PurchaseItemRequest struct {
	IngredientID string          `json:"ingredient_id" validate:"required"`
	Qty          decimal.Decimal `json:"qty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseRequest body untuk POST /api/purchases.
type CreatePurchaseRequest struct {
	SupplierName string                `json:"supplier_name" validate:"required"`
	Note         string                `json:"note,omitempty"`
	Items        []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ConfirmReceiptRequest body untuk POST /api/purchases/:id/receive.
type ConfirmReceiptRequest struct {
	Note string `json:"note,omitempty"`
}

// PurchaseItemResponse baris item PO pada respons.
type PurchaseItemResponse struct {
	IngredientID string          `json:"ingredient_id"`
	Qty          decimal.Decimal `json:"qty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// PurchaseResponse representasi PO pada respons API.
type PurchaseResponse struct {
	ID           string                 `json:"id"`
	Number       string                 `json:"number"`
	SupplierName string                 `json:"supplier_name"`
	Status       string                 `json:"status"`
	Items        []PurchaseItemResponse `json:"items"`
	Total        decimal.Decimal        `json:"total"`
	Note         string                 `json:"note,omitempty"`
	CreatedBy    string                 `json:"created_by"`
	CreatedAt    time.Time              `json:"created_at"`
}
