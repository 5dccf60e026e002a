package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dapurgempita/gempita-api/internal/domain"
)

// MovementType tipe movement stok (closed set).
type MovementType string

const (
	MovementIN     MovementType = "IN"     // penerimaan / stok masuk
	MovementOUT    MovementType = "OUT"    // konsumsi / stok keluar
	MovementADJUST MovementType = "ADJUST" // koreksi manual
)

// Valid memeriksa apakah tipe movement dikenal.
func (t MovementType) Valid() bool {
	switch t {
	case MovementIN, MovementOUT, MovementADJUST:
		return true
	}
	return false
}

// AdjustDirection arah koreksi untuk movement ADJUST.
type AdjustDirection string

const (
	AdjustPlus  AdjustDirection = "plus"
	AdjustMinus AdjustDirection = "minus"
)

// SignedDelta memetakan (tipe, qty magnitude, arah) ke delta bertanda.
// qty wajib magnitude positif; direction hanya dibaca untuk ADJUST
// (IN selalu menambah, OUT selalu mengurangi).
func SignedDelta(t MovementType, qty decimal.Decimal, direction AdjustDirection) (decimal.Decimal, error) {
	if qty.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	switch t {
	case MovementIN:
		return qty, nil
	case MovementOUT:
		return qty.Neg(), nil
	case MovementADJUST:
		switch direction {
		case AdjustPlus, "":
			return qty, nil
		case AdjustMinus:
			return qty.Neg(), nil
		}
		return decimal.Zero, domain.ErrInvalidInput
	}
	return decimal.Zero, domain.ErrInvalidInput
}

// StockMovement entri ledger stok, append-only.
// Qty tersimpan bertanda (positif menambah, negatif mengurangi); invariannya
// BalanceAfter = BalanceBefore + Qty. Movement tidak pernah di-update atau
// dihapus; koreksi dilakukan lewat movement ADJUST baru.
type StockMovement struct {
	ID             string
	IngredientID   string
	Type           MovementType
	Qty            decimal.Decimal // delta bertanda
	BalanceBefore  decimal.Decimal
	BalanceAfter   decimal.Decimal
	Note           string
	ReferenceTable string // tabel dokumen asal: purchases, productions, dst. (opsional)
	ReferenceID    string // id dokumen asal (opsional, tidak divalidasi ledger)
	CreatedBy      string // UserID pelaku
	CreatedAt      time.Time
}
