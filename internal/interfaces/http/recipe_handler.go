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

// RecipeHandler menangani CRUD resep (protected).
type RecipeHandler struct {
	uc *usecase.RecipeUseCase
}

// NewRecipeHandler membangun handler.
func NewRecipeHandler(uc *usecase.RecipeUseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// Create godoc
// @Summary      Tambah resep baru
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecipeRequest  true  "name, portion, items (ingredient_id, qty_per_portion)"
// @Success      201   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recipes [post]
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errs[0].Error()})
	}
	rec, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return recipeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRecipeResponse(rec))
}

// GetByID godoc
// @Summary      Detail satu resep beserta item bahannya
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  dto.RecipeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [get]
func (h *RecipeHandler) GetByID(c *fiber.Ctx) error {
	rec, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return recipeError(c, err)
	}
	return c.JSON(toRecipeResponse(rec))
}

// Update godoc
// @Summary      Ubah resep (header + item bahan diganti seluruhnya)
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "Recipe ID"
// @Param        body  body  dto.CreateRecipeRequest  true  "name, portion, items"
// @Success      200   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [put]
func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "body tidak valid"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: errs[0].Error()})
	}
	rec, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return recipeError(c, err)
	}
	return c.JSON(toRecipeResponse(rec))
}

// List godoc
// @Summary      Daftar resep (tanpa item bahan)
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Default 20"
// @Param        offset  query  int  false  "Default 0"
// @Success      200  {array}  dto.RecipeResponse
// @Router       /api/recipes [get]
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query tidak valid"})
	}
	page.DefaultPage()

	items, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return recipeError(c, err)
	}
	out := make([]dto.RecipeResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, toRecipeResponse(rec))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Hapus resep
// @Tags         recipes
// @Security     Bearer
// @Param        id  path  string  true  "Recipe ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return recipeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toRecipeResponse(rec *entity.Recipe) dto.RecipeResponse {
	items := make([]dto.RecipeItemResponse, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, dto.RecipeItemResponse{
			IngredientID:  it.IngredientID,
			QtyPerPortion: it.QtyPerPortion,
		})
	}
	return dto.RecipeResponse{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Portion:     rec.Portion,
		Items:       items,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

func recipeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "data resep tidak valid"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resep atau bahan tidak ditemukan"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
