package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/application/production"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/pkg/validator"
)

// ProductionHandler menangani catatan produksi dapur (protected, dapur/admin).
type ProductionHandler struct {
	uc *production.ProductionUseCase
}

// NewProductionHandler membangun handler.
func NewProductionHandler(uc *production.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Record godoc
// @Summary      Catat produksi (memotong stok bahan sesuai resep)
// @Tags         productions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordProductionRequest  true  "recipe_id, portions, note"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productions [post]
func (h *ProductionHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errs[0].Error()})
	}
	prod, err := h.uc.RecordProduction(c.Context(), GetUserID(c), in)
	if err != nil {
		return productionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductionResponse(prod))
}

// List godoc
// @Summary      Daftar catatan produksi, terbaru dulu
// @Tags         productions
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Default 20"
// @Param        offset  query  int  false  "Default 0"
// @Success      200  {array}  dto.ProductionResponse
// @Router       /api/productions [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query tidak valid"})
	}
	page.DefaultPage()

	items, err := h.uc.ListProductions(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return productionError(c, err)
	}
	out := make([]dto.ProductionResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toProductionResponse(p))
	}
	return c.JSON(out)
}

func toProductionResponse(p *entity.Production) dto.ProductionResponse {
	return dto.ProductionResponse{
		ID:        p.ID,
		RecipeID:  p.RecipeID,
		Portions:  p.Portions,
		Note:      p.Note,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}

func productionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "portions harus lebih dari nol"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "resep tidak memiliki item bahan"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resep atau bahan tidak ditemukan"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stok bahan tidak mencukupi untuk produksi"})
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENCY_CONFLICT", Message: "transaksi konflik, silakan ulangi"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
