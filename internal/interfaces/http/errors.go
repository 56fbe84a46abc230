package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asistencia-api/internal/application/dto"
	"github.com/jhoicas/asistencia-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// errorStatus traduce errores de dominio a status + código. Lo desconocido es 500.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		return fiber.StatusBadRequest, "ALREADY_CHECKED_IN"
	case errors.Is(err, domain.ErrAlreadyCheckedOut):
		return fiber.StatusBadRequest, "ALREADY_CHECKED_OUT"
	case errors.Is(err, domain.ErrNotCheckedIn):
		return fiber.StatusBadRequest, "NOT_CHECKED_IN"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrEmployeeIDExists):
		return fiber.StatusConflict, "EMPLOYEE_ID_EXISTS"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// respondError escribe el ErrorResponse. Los 500 se registran y no exponen el detalle.
func respondError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		msg = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
