package command

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

const (
	nameMinLen           = 2
	nameMaxLen           = 50
	addressMinLen        = 10
	addressMaxLen        = 200
	identificationMaxLen = 20
	passwordMinLen       = 8
)

// clean recorta espacios y normaliza a NFC para que "José" escrito con o sin
// caracteres combinados se compare y persista igual.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func validatePersonName(value, field string, vr *valueobject.ValidationResult) string {
	v := clean(value)
	if v == "" {
		vr.AddError(field + " es obligatorio")
		return ""
	}
	n := utf8.RuneCountInString(v)
	if n < nameMinLen {
		vr.AddError(field + " debe tener al menos 2 caracteres")
	}
	if n > nameMaxLen {
		vr.AddError(field + " no puede tener más de 50 caracteres")
	}
	return v
}

func validateAddress(value string, vr *valueobject.ValidationResult) string {
	v := clean(value)
	if v == "" {
		vr.AddError("La dirección es obligatoria")
		return ""
	}
	n := utf8.RuneCountInString(v)
	if n < addressMinLen {
		vr.AddError("La dirección debe tener al menos 10 caracteres")
	}
	if n > addressMaxLen {
		vr.AddError("La dirección no puede tener más de 200 caracteres")
	}
	return v
}

func validateIdentification(value string, vr *valueobject.ValidationResult) string {
	v := strings.TrimSpace(value)
	if v == "" {
		vr.AddError("El documento de identidad es obligatorio")
		return ""
	}
	if utf8.RuneCountInString(v) > identificationMaxLen {
		vr.AddError("El documento de identidad no puede tener más de 20 caracteres")
	}
	return v
}

func validatePassword(value string, vr *valueobject.ValidationResult) {
	if value == "" {
		vr.AddError("La contraseña es obligatoria")
		return
	}
	if utf8.RuneCountInString(value) < passwordMinLen {
		vr.AddError("La contraseña debe tener al menos 8 caracteres")
	}
}

func validateRole(value string, vr *valueobject.ValidationResult) string {
	v := strings.TrimSpace(value)
	if v == "" {
		vr.AddError("El rol es obligatorio")
	}
	return v
}
