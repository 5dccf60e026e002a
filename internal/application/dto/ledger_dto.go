package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body untuk POST /api/stock/movements.
// Qty selalu magnitude positif; tipe menentukan arah (direction hanya untuk ADJUST).
type RecordMovementRequest struct {
	IngredientID   string          `json:"ingredient_id" validate:"required"`
	Type           string          `json:"type" validate:"required,oneof=IN OUT ADJUST"`
	Qty            decimal.Decimal `json:"qty"`
	Direction      string          `json:"direction,omitempty" validate:"omitempty,oneof=plus minus"`
	Note           string          `json:"note,omitempty"`
	ReferenceTable string          `json:"reference_table,omitempty"`
	ReferenceID    string          `json:"reference_id,omitempty"`
}

// MovementResponse satu entri ledger pada respons API.
type MovementResponse struct {
	ID             string          `json:"id"`
	IngredientID   string          `json:"ingredient_id"`
	Type           string          `json:"type"`
	Qty            decimal.Decimal `json:"qty"`
	BalanceBefore  decimal.Decimal `json:"balance_before"`
	BalanceAfter   decimal.Decimal `json:"balance_after"`
	Note           string          `json:"note,omitempty"`
	ReferenceTable string          `json:"reference_table,omitempty"`
	ReferenceID    string          `json:"reference_id,omitempty"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

// LowStockItem satu bahan di bawah ambang minimum.
type LowStockItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
}
