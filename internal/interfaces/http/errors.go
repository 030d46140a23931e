package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain"
)

// writeError traduce un error de dominio a código HTTP y ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrNegativeValue):
		status, code = fiber.StatusBadRequest, "NEGATIVE_VALUE"
	case errors.Is(err, domain.ErrInvalidField):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidQuantity):
		status, code = fiber.StatusBadRequest, "INVALID_QUANTITY"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicateCode):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrEmptyStock):
		status, code = fiber.StatusUnprocessableEntity, "EMPTY_STOCK"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code = fiber.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
