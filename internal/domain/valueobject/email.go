package valueobject

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`(?i)^[A-Za-z0-9+_.-]+@(.+\.[a-z]{2,})$`)

// Email dirección de correo validada. Solo se obtiene mediante NewEmail.
type Email struct {
	value string
}

// NewEmail valida y construye un Email. La dirección se guarda en minúsculas:
// Ana@x.co y ana@x.co son el mismo usuario.
func NewEmail(value string) (Email, error) {
	var vr ValidationResult
	ValidateEmail(value, &vr)
	if err := vr.Err(); err != nil {
		return Email{}, err
	}
	return Email{value: strings.ToLower(value)}, nil
}

// ValidateEmail agrega a vr los errores de formato de value.
func ValidateEmail(value string, vr *ValidationResult) {
	if value == "" {
		vr.AddError("El email es obligatorio")
		return
	}
	if !emailRegex.MatchString(value) {
		vr.AddError("El email no tiene el formato correcto")
	}
}

// Value devuelve la dirección.
func (e Email) Value() string { return e.value }

// String implementa fmt.Stringer.
func (e Email) String() string { return e.value }

// IsZero indica si el Email no fue construido.
func (e Email) IsZero() bool { return e.value == "" }

// EmailFromStorage reconstruye un Email ya persistido sin revalidarlo.
// Solo para adaptadores de persistencia.
func EmailFromStorage(value string) Email { return Email{value: value} }
