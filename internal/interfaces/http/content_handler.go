package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
)

// ContentHandler maneja las secciones editables del sitio. Los GET públicos
// solo ven secciones publicadas.
type ContentHandler struct {
	uc *usecase.ContentUseCase
}

// NewContentHandler construye el handler.
func NewContentHandler(uc *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// List godoc
// @Summary      Listar secciones de contenido
// @Tags         content
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/content [get]
func (h *ContentHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(IsEditor(c))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, items)
}

// GetBySectionKey godoc
// @Summary      Obtener sección por clave
// @Tags         content
// @Produce      json
// @Param        section_key  path  string  true  "Clave de la sección"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/{section_key} [get]
func (h *ContentHandler) GetBySectionKey(c *fiber.Ctx) error {
	out, err := h.uc.GetBySectionKey(c.Params("section_key"), IsEditor(c))
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "sección no encontrada")
	}
	return ok(c, out)
}

// Upsert godoc
// @Summary      Escribir el documento completo de una sección
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        section_key  path  string  true  "Clave de la sección"
// @Param        body         body  dto.UpsertContentRequest  true  "Documento completo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/content/{section_key} [put]
func (h *ContentHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertContentRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if len(in.ContentData) == 0 {
		return fail(c, fiber.StatusBadRequest, "content_data es requerido")
	}
	out, err := h.uc.Upsert(GetUserID(c), c.Params("section_key"), in)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// UpdatePartial godoc
// @Summary      Actualizar un valor anidado sin tocar claves hermanas
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        section_key  path  string  true  "Clave de la sección"
// @Param        body         body  dto.PartialContentRequest  true  "path con puntos + value JSON"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/{section_key}/partial [patch]
func (h *ContentHandler) UpdatePartial(c *fiber.Ctx) error {
	var in dto.PartialContentRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.UpdatePartial(GetUserID(c), c.Params("section_key"), in)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la sección
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        section_key  path  string  true  "Clave de la sección"
// @Param        body         body  dto.ChangeStatusRequest  true  "draft | published | archived"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/content/{section_key}/status [patch]
func (h *ContentHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.ChangeStatus(c.Params("section_key"), in.Status); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "estado actualizado"})
}

// Delete godoc
// @Summary      Eliminar sección (archiva; ?hard=true solo admin)
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Param        section_key  path   string  true   "Clave de la sección"
// @Param        hard         query  bool    false  "Borrado definitivo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/content/{section_key} [delete]
func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	sectionKey := c.Params("section_key")
	if c.QueryBool("hard", false) {
		if GetUserRole(c) != entity.RoleAdmin {
			return fail(c, fiber.StatusForbidden, "el borrado definitivo requiere rol admin")
		}
		if err := h.uc.HardDelete(sectionKey); err != nil {
			return failErr(c, err)
		}
		return ok(c, fiber.Map{"message": "sección eliminada definitivamente"})
	}
	if err := h.uc.SoftDelete(sectionKey); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "sección archivada"})
}
