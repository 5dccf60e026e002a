package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

const ingredientColumns = "id, name, unit, current_stock, minimum_stock, created_at, updated_at"

// IngredientRepo implementasi IngredientRepository di PostgreSQL (bisa pool atau tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository membangun adaptor bahan. Terima pool atau tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var i entity.Ingredient
	err := row.Scan(&i.ID, &i.Name, &i.Unit, &i.CurrentStock, &i.MinimumStock, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create menyimpan bahan baru. Nama duplikat -> domain.ErrDuplicate.
func (r *IngredientRepo) Create(ingredient *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name, unit, current_stock, minimum_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ingredient.ID, ingredient.Name, ingredient.Unit,
		ingredient.CurrentStock, ingredient.MinimumStock,
		ingredient.CreatedAt, ingredient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID mengambil bahan per id; nil jika tidak ada.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1`
	i, err := scanIngredient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return i, nil
}

// GetByName mengambil bahan per nama; nil jika tidak ada.
func (r *IngredientRepo) GetByName(name string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE name = $1`
	i, err := scanIngredient(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient by name: %w", err)
	}
	return i, nil
}

// GetForUpdate mengambil dan mengunci baris bahan (SELECT FOR UPDATE).
// Dua movement concurrent pada bahan yang sama terserialisasi di kunci ini.
func (r *IngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE id = $1 FOR UPDATE`
	i, err := scanIngredient(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient for update: %w", err)
	}
	return i, nil
}

// UpdateStock menulis current_stock baru. Dipanggil ledger di dalam transaksi
// yang sama dengan append movement-nya.
func (r *IngredientRepo) UpdateStock(id string, stock decimal.Decimal) error {
	query := `UPDATE ingredients SET current_stock = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, stock)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update mengubah metadata bahan (bukan stok).
func (r *IngredientRepo) Update(ingredient *entity.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $2, unit = $3, minimum_stock = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ingredient.ID, ingredient.Name, ingredient.Unit, ingredient.MinimumStock, ingredient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List listing bahan urut nama.
func (r *IngredientRepo) List(limit, offset int) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	return collectIngredients(rows)
}

// ListLowStock bahan dengan current_stock <= minimum_stock, maksimal limit baris.
// ORDER BY hanya untuk tampilan; urutan antar baris seri tidak dijamin.
func (r *IngredientRepo) ListLowStock(limit int) ([]*entity.Ingredient, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients
		WHERE current_stock <= minimum_stock
		ORDER BY current_stock ASC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return collectIngredients(rows)
}

// Delete menghapus bahan.
func (r *IngredientRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectIngredients(rows pgx.Rows) ([]*entity.Ingredient, error) {
	var list []*entity.Ingredient
	for rows.Next() {
		var i entity.Ingredient
		if err := rows.Scan(&i.ID, &i.Name, &i.Unit, &i.CurrentStock, &i.MinimumStock, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
