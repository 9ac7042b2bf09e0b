package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
)

// BlogPostHandler maneja los episodios del podcast. Los GET públicos solo
// ven episodios publicados.
type BlogPostHandler struct {
	uc *usecase.BlogPostUseCase
}

// NewBlogPostHandler construye el handler.
func NewBlogPostHandler(uc *usecase.BlogPostUseCase) *BlogPostHandler {
	return &BlogPostHandler{uc: uc}
}

// List godoc
// @Summary      Listar episodios
// @Tags         episodes
// @Produce      json
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        status    query  string  false  "Filtro de estado (solo editores)"
// @Param        featured  query  bool    false  "Solo destacados"
// @Success      200       {object}  dto.SuccessResponse
// @Router       /api/episodes [get]
func (h *BlogPostHandler) List(c *fiber.Ctx) error {
	items, pag, err := h.uc.List(catalogFilterFromQuery(c))
	if err != nil {
		return failErr(c, err)
	}
	return okPage(c, items, pag)
}

// GetBySlug godoc
// @Summary      Obtener episodio por slug
// @Tags         episodes
// @Produce      json
// @Param        slug  path  string  true  "Slug del episodio"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/episodes/{slug} [get]
func (h *BlogPostHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Params("slug"), IsEditor(c))
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "episodio no encontrado")
	}
	return ok(c, out)
}

// Create godoc
// @Summary      Crear episodio (nace en draft)
// @Tags         episodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBlogPostRequest  true  "Datos del episodio"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/episodes [post]
func (h *BlogPostHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBlogPostRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Slug == "" || in.Title == "" {
		return fail(c, fiber.StatusBadRequest, "slug y title son requeridos")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}

// Update godoc
// @Summary      Actualizar episodio
// @Tags         episodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        slug  path  string  true  "Slug del episodio"
// @Param        body  body  dto.UpdateBlogPostRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/episodes/{slug} [put]
func (h *BlogPostHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBlogPostRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("slug"), in)
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "episodio no encontrado")
	}
	return ok(c, out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado del episodio
// @Tags         episodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        slug  path  string  true  "Slug del episodio"
// @Param        body  body  dto.ChangeStatusRequest  true  "draft | published | archived"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/episodes/{slug}/status [patch]
func (h *BlogPostHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.ChangeStatus(c.Params("slug"), in.Status); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "estado actualizado"})
}

// SetFeatured godoc
// @Summary      Destacar episodio (no exclusivo)
// @Tags         episodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        slug  path  string  true  "Slug del episodio"
// @Param        body  body  dto.SetFeaturedRequest  true  "featured"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/episodes/{slug}/featured [patch]
func (h *BlogPostHandler) SetFeatured(c *fiber.Ctx) error {
	var in dto.SetFeaturedRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Featured == nil {
		return fail(c, fiber.StatusBadRequest, "featured es requerido")
	}
	if err := h.uc.SetFeatured(c.Params("slug"), *in.Featured); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "episodio destacado actualizado"})
}

// Reorder godoc
// @Summary      Reordenar episodios (lote atómico)
// @Tags         episodes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BlogPostReorderRequest  true  "Pares slug/order"
// @Success      200   {object}  dto.SuccessResponse
// @Router       /api/episodes/reorder [post]
func (h *BlogPostHandler) Reorder(c *fiber.Ctx) error {
	var in dto.BlogPostReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.Reorder(c.Context(), in.Items()); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "orden actualizado"})
}

// Delete godoc
// @Summary      Eliminar episodio (archiva; ?hard=true solo admin)
// @Tags         episodes
// @Security     Bearer
// @Produce      json
// @Param        slug  path   string  true   "Slug del episodio"
// @Param        hard  query  bool    false  "Borrado definitivo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/episodes/{slug} [delete]
func (h *BlogPostHandler) Delete(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if c.QueryBool("hard", false) {
		if GetUserRole(c) != entity.RoleAdmin {
			return fail(c, fiber.StatusForbidden, "el borrado definitivo requiere rol admin")
		}
		if err := h.uc.HardDelete(slug); err != nil {
			return failErr(c, err)
		}
		return ok(c, fiber.Map{"message": "episodio eliminado definitivamente"})
	}
	if err := h.uc.SoftDelete(slug); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "episodio archivado"})
}
