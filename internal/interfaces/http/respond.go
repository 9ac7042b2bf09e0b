package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agencia-api/internal/application/dto"
	"github.com/jhoicas/agencia-api/internal/domain"
)

// exposeDetails controla si las respuestas de error incluyen el mensaje
// interno. Se enciende solo en desarrollo, desde Router.
var exposeDetails bool

// ok envía 200 con el sobre de éxito.
func ok(c *fiber.Ctx, data any) error {
	return c.JSON(dto.SuccessResponse{Success: true, Data: data})
}

// okPage envía 200 con datos paginados.
func okPage(c *fiber.Ctx, data any, p *dto.Pagination) error {
	return c.JSON(dto.SuccessResponse{Success: true, Data: data, Pagination: p})
}

// created envía 201 con el sobre de éxito.
func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true, Data: data})
}

// fail envía un error con mensaje fijo.
func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Error: message})
}

// failErr mapea los centinelas de dominio a su código HTTP. Los errores no
// reconocidos salen como 500 con mensaje genérico; el detalle interno solo
// se expone en desarrollo.
func failErr(c *fiber.Ctx, err error) error {
	status, message := mapError(err)
	out := dto.ErrorResponse{Success: false, Error: message}
	if status == fiber.StatusInternalServerError && exposeDetails {
		out.Details = err.Error()
	}
	return c.Status(status).JSON(out)
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "acceso denegado"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "recurso no encontrado"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "el email ya está registrado"
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "el recurso ya existe"
	default:
		return fiber.StatusInternalServerError, "error interno"
	}
}
