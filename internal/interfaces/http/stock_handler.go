package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/application/ledger"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/pkg/validator"
)

// StockHandler menangani endpoint ledger stok (protected).
type StockHandler struct {
	ledger *ledger.StockLedger
}

// NewStockHandler membangun handler.
func NewStockHandler(stockLedger *ledger.StockLedger) *StockHandler {
	return &StockHandler{ledger: stockLedger}
}

// RecordMovement godoc
// @Summary      Catat movement stok (IN/OUT/ADJUST)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "ingredient_id, type, qty (magnitude positif), direction (hanya ADJUST)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token tidak valid"})
	}
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errs[0].Error()})
	}

	mov, err := h.ledger.RecordMovement(c.Context(), ledger.RecordMovementInput{
		IngredientID:   in.IngredientID,
		Type:           entity.MovementType(in.Type),
		Qty:            in.Qty,
		Direction:      entity.AdjustDirection(in.Direction),
		ActorID:        actorID,
		Note:           in.Note,
		ReferenceTable: in.ReferenceTable,
		ReferenceID:    in.ReferenceID,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// ListMovements godoc
// @Summary      Riwayat movement stok, terbaru dulu
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        ingredient_id  query  string  false  "Filter satu bahan (UUID). Kosong = semua."
// @Param        limit          query  int     false  "Default 20, maks 100"
// @Param        offset         query  int     false  "Default 0"
// @Success      200  {array}   dto.MovementResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query tidak valid"})
	}
	page.DefaultPage()

	movements, err := h.ledger.ListMovements(c.Context(), c.Query("ingredient_id"), page.Limit, page.Offset)
	if err != nil {
		return stockError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

// GetLowStock godoc
// @Summary      Bahan dengan stok di bawah ambang minimum
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Default 5"
// @Success      200  {array}   dto.LowStockItem
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stock/low-stock [get]
func (h *StockHandler) GetLowStock(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	items, err := h.ledger.GetLowStock(c.Context(), limit)
	if err != nil {
		return stockError(c, err)
	}
	out := make([]dto.LowStockItem, 0, len(items))
	for _, ing := range items {
		out = append(out, dto.LowStockItem{
			ID:           ing.ID,
			Name:         ing.Name,
			Unit:         ing.Unit,
			CurrentStock: ing.CurrentStock,
			MinimumStock: ing.MinimumStock,
		})
	}
	return c.JSON(out)
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		IngredientID:   m.IngredientID,
		Type:           string(m.Type),
		Qty:            m.Qty,
		BalanceBefore:  m.BalanceBefore,
		BalanceAfter:   m.BalanceAfter,
		Note:           m.Note,
		ReferenceTable: m.ReferenceTable,
		ReferenceID:    m.ReferenceID,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
	}
}

// stockError memetakan error domain ledger ke status HTTP.
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "qty harus lebih dari nol"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data tidak valid"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bahan tidak ditemukan"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stok tidak mencukupi"})
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENCY_CONFLICT", Message: "transaksi konflik, silakan ulangi"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
