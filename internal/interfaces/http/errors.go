package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-dashboard/internal/application/dto"
	"github.com/jhoicas/estoque-dashboard/internal/domain"
)

// Códigos de error de la API.
const (
	CodeInvalidParams     = "INVALID_PARAMS"
	CodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	CodeSourceSchema      = "SOURCE_SCHEMA"
	CodeNotFound          = "NOT_FOUND"
	CodeInternal          = "INTERNAL"
)

// respondError traduce el error de aplicación a status + dto.ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, CodeInternal
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, CodeInvalidParams
	case errors.Is(err, domain.ErrSchema):
		status, code = fiber.StatusServiceUnavailable, CodeSourceSchema
	case errors.Is(err, domain.ErrSourceUnavailable):
		status, code = fiber.StatusServiceUnavailable, CodeSourceUnavailable
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, CodeNotFound
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

// ErrorHandler manejador global de Fiber: errores *fiber.Error conservan su status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusBadRequest:
			code = CodeInvalidParams
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return respondError(c, err)
}
