package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementasi RecipeRepository di PostgreSQL (pool atau tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository membangun adaptor resep. Terima pool atau tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create menyimpan resep + item.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	query := `
		INSERT INTO recipes (id, name, description, portion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Portion, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	return r.insertItems(recipe.ID, recipe.Items)
}

func (r *RecipeRepo) insertItems(recipeID string, items []entity.RecipeItem) error {
	for _, item := range items {
		query := `
			INSERT INTO recipe_items (id, recipe_id, ingredient_id, qty_per_portion)
			VALUES ($1, $2, $3, $4)`
		if _, err := r.q.Exec(context.Background(), query,
			item.ID, recipeID, item.IngredientID, item.QtyPerPortion,
		); err != nil {
			return fmt.Errorf("insert recipe item: %w", err)
		}
	}
	return nil
}

// GetByID mengambil resep + item; nil jika tidak ada.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	query := `
		SELECT id, name, description, portion, created_at, updated_at
		FROM recipes WHERE id = $1`
	var rec entity.Recipe
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.Name, &rec.Description, &rec.Portion, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	items, err := r.loadItems(id)
	if err != nil {
		return nil, err
	}
	rec.Items = items
	return &rec, nil
}

func (r *RecipeRepo) loadItems(recipeID string) ([]entity.RecipeItem, error) {
	query := `
		SELECT id, recipe_id, ingredient_id, qty_per_portion
		FROM recipe_items WHERE recipe_id = $1`
	rows, err := r.q.Query(context.Background(), query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("load recipe items: %w", err)
	}
	defer rows.Close()
	var items []entity.RecipeItem
	for rows.Next() {
		var it entity.RecipeItem
		if err := rows.Scan(&it.ID, &it.RecipeID, &it.IngredientID, &it.QtyPerPortion); err != nil {
			return nil, fmt.Errorf("scan recipe item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Update mengganti metadata resep dan seluruh itemnya (delete-insert).
func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	query := `
		UPDATE recipes SET name = $2, description = $3, portion = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.Description, recipe.Portion, recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM recipe_items WHERE recipe_id = $1`, recipe.ID); err != nil {
		return fmt.Errorf("clear recipe items: %w", err)
	}
	return r.insertItems(recipe.ID, recipe.Items)
}

// List listing resep urut nama (tanpa item; ambil detail via GetByID).
func (r *RecipeRepo) List(limit, offset int) ([]*entity.Recipe, error) {
	query := `
		SELECT id, name, description, portion, created_at, updated_at
		FROM recipes ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Portion, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Delete menghapus resep + item.
func (r *RecipeRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM recipe_items WHERE recipe_id = $1`, id); err != nil {
		return fmt.Errorf("delete recipe items: %w", err)
	}
	tag, err := r.q.Exec(context.Background(), `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
