package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implementasi ProductionRepository di PostgreSQL (pool atau tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository membangun adaptor produksi. Terima pool atau tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create menyimpan catatan produksi.
func (r *ProductionRepo) Create(production *entity.Production) error {
	query := `
		INSERT INTO productions (id, recipe_id, portions, note, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		production.ID, production.RecipeID, production.Portions,
		production.Note, production.CreatedBy, production.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// GetByID mengambil satu catatan produksi; nil jika tidak ada.
func (r *ProductionRepo) GetByID(id string) (*entity.Production, error) {
	query := `
		SELECT id, recipe_id, portions, note, created_by, created_at
		FROM productions WHERE id = $1`
	var p entity.Production
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.RecipeID, &p.Portions, &p.Note, &p.CreatedBy, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production: %w", err)
	}
	return &p, nil
}

// List listing produksi terbaru dulu.
func (r *ProductionRepo) List(limit, offset int) ([]*entity.Production, error) {
	query := `
		SELECT id, recipe_id, portions, note, created_by, created_at
		FROM productions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.RecipeID, &p.Portions, &p.Note, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
