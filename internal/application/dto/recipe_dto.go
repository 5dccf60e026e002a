package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeItemRequest kebutuhan satu bahan per porsi.
type RecipeItemRequest struct {
	IngredientID  string          `json:"ingredient_id" validate:"required"`
	QtyPerPortion decimal.Decimal `json:"qty_per_portion"`
}

// CreateRecipeRequest body untuk POST /api/recipes (juga dipakai PUT).
type CreateRecipeRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description,omitempty"`
	Portion     int                 `json:"portion" validate:"required,gt=0"`
	Items       []RecipeItemRequest `json:"items" validate:"required,min=1,dive"`
}

// RecipeItemResponse baris bahan resep pada respons.
type RecipeItemResponse struct {
	IngredientID  string          `json:"ingredient_id"`
	QtyPerPortion decimal.Decimal `json:"qty_per_portion"`
}

// RecipeResponse representasi resep pada respons API.
type RecipeResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Portion     int                  `json:"portion"`
	Items       []RecipeItemResponse `json:"items"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
