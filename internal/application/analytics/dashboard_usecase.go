// Package analytics berisi use case ringkasan operasional untuk dashboard dapur.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/domain/repository"
)

const dashboardLowStockLimit = 5 // jumlah bahan di widget stok menipis

// DashboardUseCase merangkum kondisi operasional hari ini dan bulan berjalan.
//
// Sumber data: AnalyticsRepository (query read-only) dan StockLedger.GetLowStock.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	stockLedger   *ledger.StockLedger
}

// NewDashboardUseCase membangun use case dashboard.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, stockLedger *ledger.StockLedger) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, stockLedger: stockLedger}
}

// GetSummary membentuk DashboardSummaryDTO.
//
// Empat query dijalankan paralel:
//  1. GetLowStock(5)              → daftar stok menipis
//  2. CountMovements(hari ini)    → MovementsToday
//  3. GetPurchaseMetrics(bulan)   → PurchasesThisMonth + total
//  4. CountProductions(hari ini)  → ProductionsToday
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hari ini: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Bulan berjalan: tanggal 1 pukul 00:00 – hari ini 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type lowStockResult struct {
		items []dto.LowStockItem
		err   error
	}
	type countResult struct {
		n   int
		err error
	}
	type purchaseResult struct {
		metrics repository.PurchaseMetrics
		err     error
	}

	lowCh := make(chan lowStockResult, 1)
	movCh := make(chan countResult, 1)
	purCh := make(chan purchaseResult, 1)
	prodCh := make(chan countResult, 1)

	go func() {
		ings, err := uc.stockLedger.GetLowStock(ctx, dashboardLowStockLimit)
		items := make([]dto.LowStockItem, 0, len(ings))
		for _, ing := range ings {
			items = append(items, dto.LowStockItem{
				ID:           ing.ID,
				Name:         ing.Name,
				Unit:         ing.Unit,
				CurrentStock: ing.CurrentStock,
				MinimumStock: ing.MinimumStock,
			})
		}
		lowCh <- lowStockResult{items, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountMovements(ctx, todayStart, todayEnd)
		movCh <- countResult{n, err}
	}()
	go func() {
		m, err := uc.analyticsRepo.GetPurchaseMetrics(ctx, monthStart, monthEnd)
		purCh <- purchaseResult{m, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountProductions(ctx, todayStart, todayEnd)
		prodCh <- countResult{n, err}
	}()

	low := <-lowCh
	mov := <-movCh
	pur := <-purCh
	prod := <-prodCh

	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stok menipis: %w", low.err)
	}
	if mov.err != nil {
		return nil, fmt.Errorf("dashboard: movement hari ini: %w", mov.err)
	}
	if pur.err != nil {
		return nil, fmt.Errorf("dashboard: pembelian bulan ini: %w", pur.err)
	}
	if prod.err != nil {
		return nil, fmt.Errorf("dashboard: produksi hari ini: %w", prod.err)
	}

	return &dto.DashboardSummaryDTO{
		LowStock:           low.items,
		MovementsToday:     mov.n,
		PurchasesThisMonth: pur.metrics.Count,
		PurchaseTotalMonth: pur.metrics.Total.Round(2),
		ProductionsToday:   prod.n,
	}, nil
}
