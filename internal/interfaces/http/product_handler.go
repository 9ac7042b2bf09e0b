package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
)

// ProductHandler maneja el catálogo de productos digitales.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        page      query  int   false  "Página"  default(1)
// @Param        limit     query  int   false  "Límite"  default(20)
// @Param        featured  query  bool  false  "Solo destacados"
// @Success      200       {object}  dto.SuccessResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, pag, err := h.uc.List(catalogFilterFromQuery(c))
	if err != nil {
		return failErr(c, err)
	}
	return okPage(c, items, pag)
}

// GetByProductID godoc
// @Summary      Obtener producto por clave
// @Tags         products
// @Produce      json
// @Param        product_id  path  string  true  "Clave de negocio"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{product_id} [get]
func (h *ProductHandler) GetByProductID(c *fiber.Ctx) error {
	out, err := h.uc.GetByProductID(c.Params("product_id"), IsEditor(c))
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "producto no encontrado")
	}
	return ok(c, out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.ProductID == "" || in.Name == "" {
		return fail(c, fiber.StatusBadRequest, "product_id y name son requeridos")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "Clave de negocio"
// @Param        body        body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{product_id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("product_id"), in)
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "producto no encontrado")
	}
	return ok(c, out)
}

// SetFeatured godoc
// @Summary      Destacar producto (no exclusivo)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "Clave de negocio"
// @Param        body        body  dto.SetFeaturedRequest  true  "featured"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/products/{product_id}/featured [patch]
func (h *ProductHandler) SetFeatured(c *fiber.Ctx) error {
	var in dto.SetFeaturedRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Featured == nil {
		return fail(c, fiber.StatusBadRequest, "featured es requerido")
	}
	if err := h.uc.SetFeatured(c.Params("product_id"), *in.Featured); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "producto destacado actualizado"})
}

// ChangeStatus godoc
// @Summary      Cambiar estado del producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "Clave de negocio"
// @Param        body        body  dto.ChangeStatusRequest  true  "active | inactive"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/products/{product_id}/status [patch]
func (h *ProductHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.ChangeStatus(c.Params("product_id"), in.Status); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "estado actualizado"})
}

// Reorder godoc
// @Summary      Reordenar productos (lote atómico)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductReorderRequest  true  "Pares product_id/order"
// @Success      200   {object}  dto.SuccessResponse
// @Router       /api/products/reorder [post]
func (h *ProductHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ProductReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.Reorder(c.Context(), in.Items()); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "orden actualizado"})
}

// Delete godoc
// @Summary      Eliminar producto (soft por defecto, ?hard=true solo admin)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        product_id  path   string  true   "Clave de negocio"
// @Param        hard        query  bool    false  "Borrado definitivo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/products/{product_id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	if c.QueryBool("hard", false) {
		if GetUserRole(c) != entity.RoleAdmin {
			return fail(c, fiber.StatusForbidden, "el borrado definitivo requiere rol admin")
		}
		if err := h.uc.HardDelete(productID); err != nil {
			return failErr(c, err)
		}
		return ok(c, fiber.Map{"message": "producto eliminado definitivamente"})
	}
	if err := h.uc.SoftDelete(productID); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "producto desactivado"})
}
