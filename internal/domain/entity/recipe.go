package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe resep menu dapur. Portion adalah jumlah porsi basis resep;
// kebutuhan bahan aktual dihitung dari QtyPerPortion x porsi produksi.
type Recipe struct {
	ID          string
	Name        string
	Description string
	Portion     int // porsi basis resep
	Items       []RecipeItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeItem kebutuhan satu bahan per porsi.
type RecipeItem struct {
	ID            string
	RecipeID      string
	IngredientID  string
	QtyPerPortion decimal.Decimal
}
