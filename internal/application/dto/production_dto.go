package dto

import "time"

// RecordProductionRequest body untuk POST /api/productions.
type RecordProductionRequest struct {
	RecipeID string `json:"recipe_id" validate:"required"`
	Portions int    `json:"portions" validate:"required,gt=0"`
	Note     string `json:"note,omitempty"`
}

// ProductionResponse representasi catatan produksi pada respons API.
type ProductionResponse struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipe_id"`
	Portions  int       `json:"portions"`
	Note      string    `json:"note,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
