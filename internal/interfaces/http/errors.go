package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/domain"
)

// statusError errores que ya traen un estado HTTP (respuestas no 2xx de la API).
type statusError interface {
	error
	HTTPStatus() int
}

// ErrorHandler traduce los errores de los handlers a respuestas de la consola.
// Una sesión rechazada por la API vuelve al login con la ruta actual como returnUrl.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		switch {
		case errors.Is(err, domain.ErrSessionExpired):
			return redirect(c, LoginURL(c.OriginalURL()))
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
		case errors.Is(err, domain.ErrServerUnavailable):
			log.Error().Err(err).Str("path", c.Path()).Msg("API de inventario no disponible")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SERVER_UNAVAILABLE", Message: "Error en el servidor, intente más tarde"})
		}

		var se statusError
		if errors.As(err, &se) {
			return c.Status(se.HTTPStatus()).JSON(dto.ErrorResponse{Code: "API_ERROR", Message: se.Error()})
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}

		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
