package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo query read-only untuk dashboard di PostgreSQL.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository membangun adaptor analytics.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountMovements jumlah movement stok dalam rentang waktu.
func (r *AnalyticsRepo) CountMovements(ctx context.Context, start, end time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM stock_movements WHERE created_at BETWEEN $1 AND $2`
	var n int
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// GetPurchaseMetrics jumlah dan total purchase received dalam rentang waktu.
func (r *AnalyticsRepo) GetPurchaseMetrics(ctx context.Context, start, end time.Time) (repository.PurchaseMetrics, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM purchases
		WHERE status = $1 AND updated_at BETWEEN $2 AND $3`
	var m repository.PurchaseMetrics
	if err := r.pool.QueryRow(ctx, query, entity.PurchaseReceived, start, end).Scan(&m.Count, &m.Total); err != nil {
		return repository.PurchaseMetrics{}, fmt.Errorf("purchase metrics: %w", err)
	}
	return m, nil
}

// CountProductions jumlah catatan produksi dalam rentang waktu.
func (r *AnalyticsRepo) CountProductions(ctx context.Context, start, end time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM productions WHERE created_at BETWEEN $1 AND $2`
	var n int
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&n); err != nil {
		return 0, fmt.Errorf("count productions: %w", err)
	}
	return n, nil
}
