// Package valueobject contiene los objetos de valor auto-validados del dominio de usuarios
// (Email, Salary, Birthday) y el acumulador de errores usado al construir comandos.
package valueobject

import "github.com/jhoicas/crediya-usuarios/internal/domain"

// ValidationResult acumula mensajes de error preservando el orden de inserción.
// El valor cero está listo para usarse.
type ValidationResult struct {
	errs []string
}

// AddError agrega un mensaje.
func (r *ValidationResult) AddError(message string) {
	r.errs = append(r.errs, message)
}

// AddAll agrega varios mensajes en orden.
func (r *ValidationResult) AddAll(messages []string) {
	r.errs = append(r.errs, messages...)
}

// HasErrors indica si hay al menos un mensaje.
func (r *ValidationResult) HasErrors() bool {
	return len(r.errs) > 0
}

// Errors devuelve una copia de los mensajes acumulados.
func (r *ValidationResult) Errors() []string {
	cp := make([]string, len(r.errs))
	copy(cp, r.errs)
	return cp
}

// Err devuelve nil si no hay errores o un *domain.ValidationError con todos los mensajes.
func (r *ValidationResult) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return domain.NewValidationError(r.errs...)
}
