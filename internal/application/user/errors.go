// Package user contiene los casos de uso de gestión de usuarios: registro, actualización,
// eliminación y consultas. Cada operación es una función secuencial que recibe un context.Context;
// la cancelación del llamador se propaga a los puertos.
package user

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/crediya-usuarios/internal/domain"
)

// wrapInfra deja pasar sin cambios los errores de dominio ya categorizados y envuelve el resto.
func wrapInfra(op string, err error) error {
	if errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidCredentials) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

// parseUserID valida que id sea un UUID y lo devuelve en forma canónica.
func parseUserID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", domain.NewValidationError("El id del usuario no es válido")
	}
	return parsed.String(), nil
}
