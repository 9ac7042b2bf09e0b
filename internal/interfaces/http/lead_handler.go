package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/application/usecase"
	"github.com/jhoicas/agencia-api/internal/domain/repository"
)

// LeadHandler maneja el CRM de leads. Create es pública (formulario de
// contacto del sitio); el resto exige autenticación.
type LeadHandler struct {
	uc       *usecase.LeadUseCase
	reportUC *usecase.LeadReportUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *usecase.LeadUseCase, reportUC *usecase.LeadReportUseCase) *LeadHandler {
	return &LeadHandler{uc: uc, reportUC: reportUC}
}

// Create godoc
// @Summary      Capturar lead (formulario público)
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "nombre, email, ..."
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}

// List godoc
// @Summary      Listar leads con filtros y búsqueda
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        estado            query  string  false  "nuevo | contactado | calificado | cerrado"
// @Param        servicio_interes  query  string  false  "Servicio de interés"
// @Param        assigned_to       query  string  false  "ID del usuario asignado"
// @Param        q                 query  string  false  "Búsqueda (ignora mayúsculas y acentos)"
// @Param        page              query  int     false  "Página"  default(1)
// @Param        limit             query  int     false  "Límite"  default(20)
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	f := repository.LeadFilter{
		Estado:          c.Query("estado"),
		ServicioInteres: c.Query("servicio_interes"),
		AssignedTo:      c.Query("assigned_to"),
		Query:           c.Query("q"),
		Page:            c.QueryInt("page", 1),
		Limit:           c.QueryInt("limit", 20),
	}
	items, pag, err := h.uc.List(f)
	if err != nil {
		return failErr(c, err)
	}
	return okPage(c, items, pag)
}

// GetByID godoc
// @Summary      Obtener lead por ID
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "lead no encontrado")
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Actualizar lead
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.UpdateLeadRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return failErr(c, err)
	}
	if out == nil {
		return fail(c, fiber.StatusNotFound, "lead no encontrado")
	}
	return ok(c, out)
}

// ChangeEstado godoc
// @Summary      Mover lead en el pipeline
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.ChangeEstadoRequest  true  "nuevo | contactado | calificado | cerrado"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id}/estado [put]
func (h *LeadHandler) ChangeEstado(c *fiber.Ctx) error {
	var in dto.ChangeEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.ChangeEstado(c.Params("id"), in.Estado); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "estado actualizado"})
}

// Assign godoc
// @Summary      Asignar lead a un usuario (vacío desasigna)
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lead"
// @Param        body  body  dto.AssignLeadRequest  true  "user_id"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id}/asignar [put]
func (h *LeadHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if err := h.uc.Assign(c.Params("id"), in.UserID); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "lead asignado"})
}

// Estadisticas godoc
// @Summary      Agregados del CRM (por estado, servicio y mes)
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/leads/estadisticas [get]
func (h *LeadHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.uc.Estadisticas()
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// Reporte godoc
// @Summary      Reporte PDF del pipeline
// @Tags         leads
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/leads/reporte [get]
func (h *LeadHandler) Reporte(c *fiber.Ctx) error {
	pdf, err := h.reportUC.Generate(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	filename := "leads-" + time.Now().Format("2006-01-02") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// Delete godoc
// @Summary      Eliminar lead definitivamente (solo admin)
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lead"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.HardDelete(c.Params("id")); err != nil {
		return failErr(c, err)
	}
	return ok(c, fiber.Map{"message": "lead eliminado"})
}
