package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP. Errores no
// clasificados se loguean y responden 500 sin filtrar detalles internos.
func respondError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: insufficient.Error(),
		})
	}
	var notFound *domain.ProductNotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "PRODUCT_NOT_FOUND",
			Message: notFound.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_INPUT",
			Message: "Datos de entrada inválidos",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "Recurso no encontrado",
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Acceso denegado",
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "No autorizado",
		})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Error interno del servidor",
		})
	}
}
