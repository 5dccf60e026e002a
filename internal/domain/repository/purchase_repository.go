package repository

import "github.com/dapurgempita/gempita-api/internal/domain/entity"

// PurchaseRepository port persistensi untuk purchase order + item.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	// GetForUpdate mengunci baris purchase (dipakai saat konfirmasi penerimaan).
	GetForUpdate(id string) (*entity.Purchase, error)
	UpdateStatus(id, status string) error
	List(status string, limit, offset int) ([]*entity.Purchase, error)
}

// ReceiptRepository port persistensi untuk bukti penerimaan.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByPurchase(purchaseID string) (*entity.Receipt, error)
}
