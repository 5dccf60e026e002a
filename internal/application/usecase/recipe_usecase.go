package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

// RecipeUseCase CRUD resep menu.
type RecipeUseCase struct {
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
}

// NewRecipeUseCase membangun use case resep.
func NewRecipeUseCase(recipeRepo repository.RecipeRepository, ingredientRepo repository.IngredientRepository) *RecipeUseCase {
	return &RecipeUseCase{recipeRepo: recipeRepo, ingredientRepo: ingredientRepo}
}

// buildItems memvalidasi item resep: bahan harus ada dan qty per porsi positif.
func (uc *RecipeUseCase) buildItems(recipeID string, in []dto.RecipeItemRequest) ([]entity.RecipeItem, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.RecipeItem, 0, len(in))
	for _, it := range in {
		if it.QtyPerPortion.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidQuantity
		}
		ing, err := uc.ingredientRepo.GetByID(it.IngredientID)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.RecipeItem{
			ID:            uuid.New().String(),
			RecipeID:      recipeID,
			IngredientID:  it.IngredientID,
			QtyPerPortion: it.QtyPerPortion,
		})
	}
	return items, nil
}

// Create membuat resep baru beserta item bahannya.
func (uc *RecipeUseCase) Create(ctx context.Context, in dto.CreateRecipeRequest) (*entity.Recipe, error) {
	if in.Portion <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	recipe := &entity.Recipe{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Portion:     in.Portion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	items, err := uc.buildItems(recipe.ID, in.Items)
	if err != nil {
		return nil, err
	}
	recipe.Items = items
	if err := uc.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetByID mengambil satu resep beserta item.
func (uc *RecipeUseCase) GetByID(ctx context.Context, id string) (*entity.Recipe, error) {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	return recipe, nil
}

// Update mengganti metadata dan seluruh item resep.
func (uc *RecipeUseCase) Update(ctx context.Context, id string, in dto.CreateRecipeRequest) (*entity.Recipe, error) {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	if in.Portion <= 0 {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.buildItems(id, in.Items)
	if err != nil {
		return nil, err
	}
	recipe.Name = in.Name
	recipe.Description = in.Description
	recipe.Portion = in.Portion
	recipe.Items = items
	recipe.UpdatedAt = time.Now()
	if err := uc.recipeRepo.Update(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// List listing resep.
func (uc *RecipeUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Recipe, error) {
	return uc.recipeRepo.List(limit, offset)
}

// Delete menghapus resep beserta itemnya.
func (uc *RecipeUseCase) Delete(ctx context.Context, id string) error {
	recipe, err := uc.recipeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return domain.ErrNotFound
	}
	return uc.recipeRepo.Delete(id)
}
