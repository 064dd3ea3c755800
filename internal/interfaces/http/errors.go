package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crediya-usuarios/internal/application/dto"
	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/pkg/logger"
	"github.com/jhoicas/crediya-usuarios/pkg/validation"
)

// Códigos de error expuestos en dto.ErrorResponse.Code.
const (
	CodeInvalidBody  = "INVALID_BODY"
	CodeValidation   = "VALIDATION"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeMissingToken = "MISSING_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeMissingRole  = "MISSING_ROLE"
	CodeInternal     = "INTERNAL"
)

const (
	msgInvalidCredentials = "credenciales inválidas"
	msgInternal           = "error interno del servidor"
)

// writeError traduce errores de dominio a HTTP:
//   - validación → 400 con cada mensaje
//   - no encontrado → 404
//   - credenciales → 401 sin indicar qué parte falló
//   - resto → 500 opaco, registrado con detalle
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		log.Warn().Err(err).Str("path", c.Path()).Msg("petición rechazada por validación")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    CodeValidation,
			Message: err.Error(),
			Errors:  domain.ValidationMessages(err),
		})
	case errors.Is(err, domain.ErrNotFound):
		log.Warn().Err(err).Str("path", c.Path()).Msg("recurso no encontrado")
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		log.Warn().Str("path", c.Path()).Msg("credenciales rechazadas")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: msgInvalidCredentials})
	default:
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: CodeInternal, Message: msgInternal})
	}
}

// writeBadRequest responde 400 con los mensajes del validador de payloads.
func writeBadRequest(c *fiber.Ctx, code string, err error) error {
	msgs := validation.Messages(err)
	message := "cuerpo inválido"
	if len(msgs) > 0 {
		message = msgs[0]
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message, Errors: msgs})
}
