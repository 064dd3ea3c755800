package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation         = errors.New("validación de dominio")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = &notFoundError{msg: "usuario no encontrado"}
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = &credentialsError{msg: "token inválido o expirado"}
	ErrEmailAlreadyExists = NewValidationError("El email ya está registrado")
)

// ValidationError transporta uno o más mensajes de validación en el orden en que se detectaron.
// errors.Is(err, ErrValidation) es verdadero para cualquier ValidationError.
type ValidationError struct {
	errs []string
}

// NewValidationError construye el error copiando los mensajes (el llamador puede seguir usando su slice).
func NewValidationError(messages ...string) *ValidationError {
	cp := make([]string, len(messages))
	copy(cp, messages)
	return &ValidationError{errs: cp}
}

// Error une los mensajes no vacíos con "; ".
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.errs))
	for _, m := range e.errs {
		if m != "" {
			parts = append(parts, m)
		}
	}
	return strings.Join(parts, "; ")
}

// Errors devuelve una copia de los mensajes.
func (e *ValidationError) Errors() []string {
	cp := make([]string, len(e.errs))
	copy(cp, e.errs)
	return cp
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type notFoundError struct{ msg string }

func (e *notFoundError) Error() string        { return e.msg }
func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

type credentialsError struct{ msg string }

func (e *credentialsError) Error() string        { return e.msg }
func (e *credentialsError) Is(target error) bool { return target == ErrInvalidCredentials }

// ValidationMessages extrae los mensajes si err es (o envuelve) un ValidationError.
func ValidationMessages(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Errors()
	}
	return nil
}
