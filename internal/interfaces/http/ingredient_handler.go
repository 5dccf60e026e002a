package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dapurgempita/gempita-api/internal/application/dto"
	"github.com/dapurgempita/gempita-api/internal/application/usecase"
	"github.com/dapurgempita/gempita-api/internal/domain"
	"github.com/dapurgempita/gempita-api/internal/domain/entity"
	"github.com/dapurgempita/gempita-api/pkg/validator"
)

// IngredientHandler menangani CRUD bahan baku (protected).
type IngredientHandler struct {
	uc *usecase.IngredientUseCase
}

// NewIngredientHandler membangun handler.
func NewIngredientHandler(uc *usecase.IngredientUseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// Create godoc
// @Summary      Tambah bahan baku baru
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngredientRequest  true  "name, unit, minimum_stock, initial_stock"
// @Success      201   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errs[0].Error()})
	}
	ing, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return ingredientError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toIngredientResponse(ing))
}

// GetByID godoc
// @Summary      Detail satu bahan
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "Ingredient ID"
// @Success      200  {object}  dto.IngredientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [get]
func (h *IngredientHandler) GetByID(c *fiber.Ctx) error {
	ing, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return ingredientError(c, err)
	}
	return c.JSON(toIngredientResponse(ing))
}

// Update godoc
// @Summary      Ubah nama/satuan/ambang minimum bahan
// @Description  Stok tidak bisa diubah dari sini; gunakan movement ADJUST.
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "Ingredient ID"
// @Param        body  body  dto.UpdateIngredientRequest  true  "name, unit, minimum_stock"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [put]
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errs[0].Error()})
	}
	ing, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return ingredientError(c, err)
	}
	return c.JSON(toIngredientResponse(ing))
}

// List godoc
// @Summary      Daftar bahan baku
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Default 20"
// @Param        offset  query  int  false  "Default 0"
// @Success      200  {array}  dto.IngredientResponse
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query tidak valid"})
	}
	page.DefaultPage()

	items, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return ingredientError(c, err)
	}
	out := make([]dto.IngredientResponse, 0, len(items))
	for _, ing := range items {
		out = append(out, toIngredientResponse(ing))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Hapus bahan baku
// @Tags         ingredients
// @Security     Bearer
// @Param        id  path  string  true  "Ingredient ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return ingredientError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toIngredientResponse(ing *entity.Ingredient) dto.IngredientResponse {
	return dto.IngredientResponse{
		ID:           ing.ID,
		Name:         ing.Name,
		Unit:         ing.Unit,
		CurrentStock: ing.CurrentStock,
		MinimumStock: ing.MinimumStock,
		LowStock:     ing.IsLowStock(),
		CreatedAt:    ing.CreatedAt,
		UpdatedAt:    ing.UpdatedAt,
	}
}

func ingredientError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data tidak valid"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bahan tidak ditemukan"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "nama bahan sudah terpakai"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
