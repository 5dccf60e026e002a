package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest body untuk POST /api/ingredients.
type CreateIngredientRequest struct {
	Name         string          `json:"name" validate:"required"`
	Unit         string          `json:"unit" validate:"required"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	InitialStock decimal.Decimal `json:"initial_stock"` // jika > 0, dicatat sebagai movement IN pertama
}

// UpdateIngredientRequest body untuk PUT /api/ingredients/:id.
// CurrentStock sengaja tidak ada di sini: stok hanya berubah lewat movement.
type UpdateIngredientRequest struct {
	Name         string          `json:"name" validate:"required"`
	Unit         string          `json:"unit" validate:"required"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
}

// IngredientResponse representasi bahan pada respons API.
type IngredientResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
