package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
)

// PlanHandler maneja los planes de precios, incluida la marca exclusiva de
// plan destacado.
type PlanHandler struct {
	uc *usecase.PlanUseCase
}

// NewPlanHandler construye el handler.
func NewPlanHandler(uc *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{uc: uc}
}

// List godoc
// @Summary      Listar planes
// @Tags         plans
// @Produce      json
// @Param        page      query  int   false  "Página"  default(1)
// @Param        limit     query  int   false  "Límite"  default(20)
// @Param        featured  query  bool  false  "Solo el destacado"
// @Success      200       {object}  dto.SuccessResponse
// @Router       /api/plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	items, pag, err := h.uc.List(catalogFilterFromQuery(c))
	if err != nil {
		return failErr(c, err)
	}
	return okPage(c, items, pag)
}

// GetByPlanID godoc
// @Summary      Obtener plan por clave
// @Tags         plans
// @Produce      json
// @Param        plan_id  path  string  true  "Clave de negocio"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{plan_id} [get]
func (h *PlanHandler) GetByPlanID(c *fiber.Ctx) error {
	out, err := h.uc.GetByPlanID(c.Params("plan_id"), IsEditor(c))
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "plan no encontrado")
	}
	return ok(c, out)
}

// Create godoc
// @Summary      Crear plan
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanRequest  true  "Datos del plan"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/plans [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.PlanID == "" || in.Name == "" {
		return fail(c, fiber.StatusBadRequest, "plan_id y name son requeridos")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}

// Update godoc
// @Summary      Actualizar plan
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plan_id  path  string  true  "Clave de negocio"
// @Param        body     body  dto.UpdatePlanRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{plan_id} [put]
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("plan_id"), in)
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "plan no encontrado")
	}
	return ok(c, out)
}

// SetFeatured godoc
// @Summary      Destacar plan (exclusivo: desmarca al resto)
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plan_id  path  string  true  "Clave de negocio"
// @Param        body     body  dto.SetFeaturedRequest  true  "featured"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/plans/{plan_id}/featured [patch]
func (h *PlanHandler) SetFeatured(c *fiber.Ctx) error {
	var in dto.SetFeaturedRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Featured == nil {
		return fail(c, fiber.StatusBadRequest, "featured es requerido")
	}
	if err := h.uc.SetFeatured(c.Context(), c.Params("plan_id"), *in.Featured); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "plan destacado actualizado"})
}

// ChangeStatus godoc
// @Summary      Cambiar estado del plan
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        plan_id  path  string  true  "Clave de negocio"
// @Param        body     body  dto.ChangeStatusRequest  true  "active | inactive"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/plans/{plan_id}/status [patch]
func (h *PlanHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.ChangeStatus(c.Params("plan_id"), in.Status); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "estado actualizado"})
}

// Reorder godoc
// @Summary      Reordenar planes (lote atómico)
// @Tags         plans
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlanReorderRequest  true  "Pares plan_id/order"
// @Success      200   {object}  dto.SuccessResponse
// @Router       /api/plans/reorder [post]
func (h *PlanHandler) Reorder(c *fiber.Ctx) error {
	var in dto.PlanReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.Reorder(c.Context(), in.Items()); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "orden actualizado"})
}

// Delete godoc
// @Summary      Eliminar plan (soft por defecto, ?hard=true solo admin)
// @Tags         plans
// @Security     Bearer
// @Produce      json
// @Param        plan_id  path   string  true   "Clave de negocio"
// @Param        hard     query  bool    false  "Borrado definitivo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/plans/{plan_id} [delete]
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	planID := c.Params("plan_id")
	if c.QueryBool("hard", false) {
		if GetUserRole(c) != entity.RoleAdmin {
			return fail(c, fiber.StatusForbidden, "el borrado definitivo requiere rol admin")
		}
		if err := h.uc.HardDelete(planID); err != nil {
			return failErr(c, err)
		}
		return ok(c, fiber.Map{"message": "plan eliminado definitivamente"})
	}
	if err := h.uc.SoftDelete(planID); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "plan desactivado"})
}
