package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, ingredient_id, type, qty, balance_before, balance_after,
		note, reference_table, reference_id, created_by, created_at`

// StockMovementRepo implementasi StockMovementRepository di PostgreSQL.
// Tabel stock_movements append-only: tidak ada UPDATE/DELETE di adaptor ini.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository membangun adaptor movement. Terima pool atau tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create menyimpan satu movement.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, ingredient_id, type, qty, balance_before, balance_after,
			note, reference_table, reference_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	refTable := nullable(movement.ReferenceTable)
	refID := nullable(movement.ReferenceID)
	createdBy := nullable(movement.CreatedBy)
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.IngredientID, string(movement.Type), movement.Qty,
		movement.BalanceBefore, movement.BalanceAfter,
		movement.Note, refTable, refID, createdBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID mengambil satu movement; nil jika tidak ada.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List movement terbaru dulu; ingredientID kosong berarti semua bahan.
func (r *StockMovementRepo) List(ingredientID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements`
	args := []any{}
	pos := 1
	if ingredientID != "" {
		query += fmt.Sprintf(" WHERE ingredient_id = $%d", pos)
		args = append(args, ingredientID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovementRows(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var typ string
	var refTable, refID, createdBy *string
	err := row.Scan(&m.ID, &m.IngredientID, &typ, &m.Qty, &m.BalanceBefore, &m.BalanceAfter,
		&m.Note, &refTable, &refID, &createdBy, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(typ)
	m.ReferenceTable = deref(refTable)
	m.ReferenceID = deref(refID)
	m.CreatedBy = deref(createdBy)
	return &m, nil
}

func scanMovementRows(rows pgx.Rows) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var typ string
	var refTable, refID, createdBy *string
	err := rows.Scan(&m.ID, &m.IngredientID, &typ, &m.Qty, &m.BalanceBefore, &m.BalanceAfter,
		&m.Note, &refTable, &refID, &createdBy, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan movement: %w", err)
	}
	m.Type = entity.MovementType(typ)
	m.ReferenceTable = deref(refTable)
	m.ReferenceID = deref(refID)
	m.CreatedBy = deref(createdBy)
	return &m, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
