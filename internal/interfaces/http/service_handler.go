package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain/entity"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// ServiceHandler maneja el catálogo de servicios. Los GET son públicos
// (solo activos); el resto exige editor o admin.
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// catalogFilterFromQuery arma el filtro común de catálogo desde la query.
// include_inactive solo surte efecto para editores autenticados.
func catalogFilterFromQuery(c *fiber.Ctx) repository.CatalogFilter {
	f := repository.CatalogFilter{
		Status: c.Query("status"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 20),
	}
	if IsEditor(c) {
		f.IncludeInactive = c.QueryBool("include_inactive", false)
	} else {
		f.Status = ""
	}
	if c.Query("featured") != "" {
		v := c.QueryBool("featured")
		f.IsFeatured = &v
	}
	return f
}

// List godoc
// @Summary      Listar servicios
// @Tags         services
// @Produce      json
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Límite"  default(20)
// @Param        featured  query  bool    false  "Solo destacados"
// @Success      200       {object}  dto.SuccessResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	items, pag, err := h.uc.List(catalogFilterFromQuery(c))
	if err != nil {
		return failErr(c, err)
	}
	return okPage(c, items, pag)
}

// GetByServiceID godoc
// @Summary      Obtener servicio por clave
// @Tags         services
// @Produce      json
// @Param        service_id  path  string  true  "Clave de negocio"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{service_id} [get]
func (h *ServiceHandler) GetByServiceID(c *fiber.Ctx) error {
	out, err := h.uc.GetByServiceID(c.Params("service_id"), IsEditor(c))
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "servicio no encontrado")
	}
	return ok(c, out)
}

// Create godoc
// @Summary      Crear servicio
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceRequest  true  "Datos del servicio"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.ServiceID == "" || in.Title == "" {
		return fail(c, fiber.StatusBadRequest, "service_id y title son requeridos")
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}

// Update godoc
// @Summary      Actualizar servicio
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        service_id  path  string  true  "Clave de negocio"
// @Param        body        body  dto.UpdateServiceRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{service_id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("service_id"), in)
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "servicio no encontrado")
	}
	return ok(c, out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado del servicio
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        service_id  path  string  true  "Clave de negocio"
// @Param        body        body  dto.ChangeStatusRequest  true  "active | inactive"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/services/{service_id}/status [patch]
func (h *ServiceHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.ChangeStatus(c.Params("service_id"), in.Status); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "estado actualizado"})
}

// Reorder godoc
// @Summary      Reordenar servicios (lote atómico)
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ServiceReorderRequest  true  "Pares service_id/order"
// @Success      200   {object}  dto.SuccessResponse
// @Router       /api/services/reorder [post]
func (h *ServiceHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ServiceReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.Reorder(c.Context(), in.Items()); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "orden actualizado"})
}

// Delete godoc
// @Summary      Eliminar servicio (soft por defecto, ?hard=true solo admin)
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        service_id  path   string  true   "Clave de negocio"
// @Param        hard        query  bool    false  "Borrado definitivo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/services/{service_id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	serviceID := c.Params("service_id")
	if c.QueryBool("hard", false) {
		if GetUserRole(c) != entity.RoleAdmin {
			return fail(c, fiber.StatusForbidden, "el borrado definitivo requiere rol admin")
		}
		if err := h.uc.HardDelete(serviceID); err != nil {
			return failErr(c, err)
		}
		return ok(c, fiber.Map{"message": "servicio eliminado definitivamente"})
	}
	if err := h.uc.SoftDelete(serviceID); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "servicio desactivado"})
}
