package valueobject

import (
	"fmt"
	"time"
)

// MaxAgeYears edad máxima aceptada para una fecha de nacimiento (límite inclusivo).
const MaxAgeYears = 120

// BirthdayLayout único formato aceptado al parsear (yyyy-MM-dd).
const BirthdayLayout = "2006-01-02"

// Birthday fecha de nacimiento sin componente horario.
type Birthday struct {
	value time.Time
}

// NewBirthday valida la fecha contra el día actual.
func NewBirthday(value time.Time) (Birthday, error) {
	return newBirthday(value, time.Now())
}

// ParseBirthday acepta únicamente fechas ISO yyyy-MM-dd.
func ParseBirthday(iso string) (Birthday, error) {
	var vr ValidationResult
	b := ValidateBirthdayString(iso, &vr)
	if err := vr.Err(); err != nil {
		return Birthday{}, err
	}
	return b, nil
}

// ValidateBirthdayString parsea y valida iso, agregando los errores a vr.
// Si hay errores el Birthday devuelto es el valor cero.
func ValidateBirthdayString(iso string, vr *ValidationResult) Birthday {
	if iso == "" {
		vr.AddError("La fecha de nacimiento es obligatoria")
		return Birthday{}
	}
	t, err := time.Parse(BirthdayLayout, iso)
	if err != nil {
		vr.AddError("Formato de fecha inválido, use yyyy-MM-dd")
		return Birthday{}
	}
	before := len(vr.errs)
	validateBirthday(t, time.Now(), vr)
	if len(vr.errs) > before {
		return Birthday{}
	}
	return Birthday{value: t}
}

func newBirthday(value, now time.Time) (Birthday, error) {
	var vr ValidationResult
	validateBirthday(value, now, &vr)
	if err := vr.Err(); err != nil {
		return Birthday{}, err
	}
	return Birthday{value: dateOnly(value)}, nil
}

func validateBirthday(value, now time.Time, vr *ValidationResult) {
	if value.IsZero() {
		vr.AddError("La fecha de nacimiento es obligatoria")
		return
	}
	day := dateOnly(value)
	today := dateOnly(now)
	if day.After(today) {
		vr.AddError("La fecha de nacimiento no puede ser futura")
		return
	}
	oldest := today.AddDate(-MaxAgeYears, 0, 0)
	if day.Before(oldest) {
		vr.AddError(fmt.Sprintf("La fecha de nacimiento no puede ser anterior a %s", oldest.Format(BirthdayLayout)))
	}
}

// dateOnly descarta hora y zona conservando el día calendario.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Value devuelve la fecha (UTC, medianoche).
func (b Birthday) Value() time.Time { return b.value }

// IsZero indica si el Birthday no fue construido.
func (b Birthday) IsZero() bool { return b.value.IsZero() }

func (b Birthday) String() string { return b.value.Format(BirthdayLayout) }

// BirthdayFromStorage reconstruye un Birthday ya persistido; la edad máxima se valida solo al registrar.
func BirthdayFromStorage(value time.Time) Birthday { return Birthday{value: dateOnly(value)} }
