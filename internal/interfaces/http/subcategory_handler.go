package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tablesprint/catalog-api/internal/application/dto"
	"github.com/tablesprint/catalog-api/internal/application/usecase"
)

// SubcategoryHandler maneja las peticiones HTTP para Subcategory.
type SubcategoryHandler struct {
	uc *usecase.SubcategoryUseCase
}

// NewSubcategoryHandler construye el handler.
func NewSubcategoryHandler(uc *usecase.SubcategoryUseCase) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         subcategories
// @Produce      json
// @Success      200  {array}   dto.SubcategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /subcategories [get]
func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return storageError(c, err, "Failed to fetch subcategories")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubcategoryRequest  true  "subname, name, sequence, image_url, status"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /subcategories [post]
func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.SubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return storageError(c, err, "Failed to add subcategory")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Sobrescribir subcategoría
// @Tags         subcategories
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la subcategoría"
// @Param        body  body  dto.SubcategoryRequest  true  "subname, name, sequence, image_url, status"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /subcategories/{id} [put]
func (h *SubcategoryHandler) Update(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	var in dto.SubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return storageError(c, err, "Failed to update subcategory")
	}
	return c.JSON(dto.MessageResponse{Message: "SubCategory updated successfully"})
}

// Delete godoc
// @Summary      Eliminar subcategoría
// @Tags         subcategories
// @Produce      json
// @Param        id   path  int  true  "ID de la subcategoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /subcategories/{id} [delete]
func (h *SubcategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return storageError(c, err, "Failed to delete subcategory")
	}
	return c.JSON(dto.MessageResponse{Message: "SubCategory deleted successfully"})
}
