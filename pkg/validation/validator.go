package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator valida payloads de entrada usando los nombres JSON de los campos en los mensajes.
// *validator.Validate cachea la metadata de los structs y es seguro para uso concurrente.
type Validator struct {
	v *validator.Validate
}

// New configura el validador con el tag json como nombre de campo en los errores.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct valida s según sus tags validate.
func (val *Validator) Struct(s any) error {
	return val.v.Struct(s)
}

// Var valida un valor suelto (p. ej. un parámetro de ruta) contra tag.
func (val *Validator) Var(field string, value any, tag string) error {
	if err := val.v.Var(value, tag); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, field+" "+formatFieldError(fe))
			}
			return &FieldErrors{messages: msgs}
		}
		return err
	}
	return nil
}

// FieldErrors mensajes legibles de un parámetro suelto.
type FieldErrors struct {
	messages []string
}

func (e *FieldErrors) Error() string { return strings.Join(e.messages, "; ") }

// Messages convierte errores de validación o de decodificación JSON en mensajes legibles,
// en el orden de los campos del struct.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var fe *FieldErrors
	if errors.As(err, &fe) {
		out := make([]string, len(fe.messages))
		copy(out, fe.messages)
		return out
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return []string{"El cuerpo de la petición no es un JSON válido"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fe.Field()+" "+formatFieldError(fe))
		}
		return out
	}

	return []string{"Petición inválida"}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "no tiene el formato correcto"
	case "uuid", "uuid4":
		return "debe ser un UUID válido"
	case "datetime":
		return "debe tener formato yyyy-MM-dd"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "debe ser mayor o igual a " + param
		}
		return "debe tener al menos " + param + " caracteres"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "debe ser menor o igual a " + param
		}
		return "no puede tener más de " + param + " caracteres"
	case "len":
		return "debe tener exactamente " + param + " caracteres"
	case "oneof":
		return "debe ser uno de: " + strings.Join(strings.Fields(param), ", ")
	case "numeric", "number":
		return "debe ser numérico"
	default:
		if param != "" {
			return fmt.Sprintf("no cumple la regla '%s=%s'", fe.Tag(), param)
		}
		return fmt.Sprintf("no cumple la regla '%s'", fe.Tag())
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
