package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/application/purchasing"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/pkg/validator"
)

// PurchaseHandler menangani purchase order bahan (protected, gudang/admin).
type PurchaseHandler struct {
	uc *purchasing.PurchaseUseCase
}

// NewPurchaseHandler membangun handler.
func NewPurchaseHandler(uc *purchasing.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Buat purchase order (status draft)
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "supplier_name, items (ingredient_id, qty, unit_price)"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errs[0].Error()})
	}
	purchase, err := h.uc.CreatePurchase(c.Context(), GetUserID(c), in)
	if err != nil {
		return purchaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPurchaseResponse(purchase))
}

// GetByID godoc
// @Summary      Detail satu purchase order
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "Purchase ID"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	purchase, err := h.uc.GetPurchase(c.Context(), c.Params("id"))
	if err != nil {
		return purchaseError(c, err)
	}
	return c.JSON(toPurchaseResponse(purchase))
}

// List godoc
// @Summary      Daftar purchase order, terbaru dulu
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filter status: draft, ordered, received, cancelled"
// @Param        limit   query  int     false  "Default 20"
// @Param        offset  query  int     false  "Default 0"
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query tidak valid"})
	}
	page.DefaultPage()

	purchases, err := h.uc.ListPurchases(c.Context(), c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return purchaseError(c, err)
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p))
	}
	return c.JSON(out)
}

// MarkOrdered godoc
// @Summary      Tandai PO sudah dipesan ke supplier (draft -> ordered)
// @Tags         purchases
// @Security     Bearer
// @Param        id  path  string  true  "Purchase ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/order [post]
func (h *PurchaseHandler) MarkOrdered(c *fiber.Ctx) error {
	if err := h.uc.MarkOrdered(c.Context(), c.Params("id")); err != nil {
		return purchaseError(c, err)
	}
	return c.JSON(fiber.Map{"message": "purchase order dipesan"})
}

// ConfirmReceipt godoc
// @Summary      Konfirmasi penerimaan barang
// @Description  Membuat receipt dan movement IN per item dalam satu transaksi,
// @Description  lalu menandai PO received. Gagal di tengah = tidak ada yang tercatat.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true   "Purchase ID"
// @Param        body  body  dto.ConfirmReceiptRequest  false  "note (opsional)"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/receive [post]
func (h *PurchaseHandler) ConfirmReceipt(c *fiber.Ctx) error {
	var in dto.ConfirmReceiptRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
		}
	}
	receipt, err := h.uc.ConfirmReceipt(c.Context(), c.Params("id"), GetUserID(c), in.Note)
	if err != nil {
		return purchaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "penerimaan tercatat", "receipt_id": receipt.ID})
}

func toPurchaseResponse(p *entity.Purchase) dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			IngredientID: it.IngredientID,
			Qty:          it.Qty,
			UnitPrice:    it.UnitPrice,
		})
	}
	return dto.PurchaseResponse{
		ID:           p.ID,
		Number:       p.Number,
		SupplierName: p.SupplierName,
		Status:       p.Status,
		Items:        items,
		Total:        p.Total,
		Note:         p.Note,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
	}
}

func purchaseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "qty harus lebih dari nol"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data atau status purchase tidak valid"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "purchase atau bahan tidak ditemukan"})
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENCY_CONFLICT", Message: "transaksi konflik, silakan ulangi"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
