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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)
var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

const purchaseColumns = "id, number, supplier_name, status, total, note, created_by, created_at, updated_at"

// PurchaseRepo implementasi PurchaseRepository di PostgreSQL (pool atau tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository membangun adaptor purchase. Terima pool atau tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create menyimpan purchase beserta item dalam beberapa insert.
// Panggil dari dalam transaksi jika butuh atomisitas header+item.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, number, supplier_name, status, total, note, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.Number, purchase.SupplierName, purchase.Status,
		purchase.Total, purchase.Note, purchase.CreatedBy, purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	for _, item := range purchase.Items {
		itemQuery := `
			INSERT INTO purchase_items (id, purchase_id, ingredient_id, qty, unit_price)
			VALUES ($1, $2, $3, $4, $5)`
		if _, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, item.PurchaseID, item.IngredientID, item.Qty, item.UnitPrice,
		); err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}
	return nil
}

// GetByID mengambil purchase + item; nil jika tidak ada.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	return r.get(id, false)
}

// GetForUpdate mengambil purchase + item dan mengunci baris header (FOR UPDATE).
func (r *PurchaseRepo) GetForUpdate(id string) (*entity.Purchase, error) {
	return r.get(id, true)
}

func (r *PurchaseRepo) get(id string, forUpdate bool) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Number, &p.SupplierName, &p.Status, &p.Total, &p.Note,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	items, err := r.loadItems(p.ID)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

func (r *PurchaseRepo) loadItems(purchaseID string) ([]entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, ingredient_id, qty, unit_price
		FROM purchase_items WHERE purchase_id = $1`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("load purchase items: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ID, &it.PurchaseID, &it.IngredientID, &it.Qty, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateStatus mengubah status purchase.
func (r *PurchaseRepo) UpdateStatus(id, status string) error {
	query := `UPDATE purchases SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update purchase status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List listing purchase terbaru dulu; status kosong berarti semua.
func (r *PurchaseRepo) List(status string, limit, offset int) ([]*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.Number, &p.SupplierName, &p.Status, &p.Total, &p.Note,
			&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		items, err := r.loadItems(p.ID)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}
	return list, nil
}

// ReceiptRepo implementasi ReceiptRepository di PostgreSQL (pool atau tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository membangun adaptor receipt. Terima pool atau tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create menyimpan bukti penerimaan.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, purchase_id, note, received_by, received_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.PurchaseID, receipt.Note, receipt.ReceivedBy, receipt.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// GetByPurchase mengambil receipt untuk satu purchase; nil jika belum diterima.
func (r *ReceiptRepo) GetByPurchase(purchaseID string) (*entity.Receipt, error) {
	query := `
		SELECT id, purchase_id, note, received_by, received_at
		FROM receipts WHERE purchase_id = $1`
	var rec entity.Receipt
	err := r.q.QueryRow(context.Background(), query, purchaseID).Scan(
		&rec.ID, &rec.PurchaseID, &rec.Note, &rec.ReceivedBy, &rec.ReceivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &rec, nil
}
