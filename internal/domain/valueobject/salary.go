package valueobject

import "github.com/shopspring/decimal"

var (
	salaryMin = decimal.Zero
	salaryMax = decimal.NewFromInt(15_000_000)
)

// Salary salario base en pesos, entre 0 y 15.000.000 inclusive.
type Salary struct {
	amount decimal.Decimal
}

// NewSalary valida y construye un Salary. amount nil equivale a un salario ausente.
func NewSalary(amount *decimal.Decimal) (Salary, error) {
	var vr ValidationResult
	ValidateSalary(amount, &vr)
	if err := vr.Err(); err != nil {
		return Salary{}, err
	}
	return Salary{amount: *amount}, nil
}

// SalaryFromDecimal atajo para valores no opcionales.
func SalaryFromDecimal(amount decimal.Decimal) (Salary, error) {
	return NewSalary(&amount)
}

// ValidateSalary agrega a vr los errores de rango de amount.
func ValidateSalary(amount *decimal.Decimal, vr *ValidationResult) {
	if amount == nil {
		vr.AddError("El salario es obligatorio")
		return
	}
	if amount.LessThan(salaryMin) || amount.GreaterThan(salaryMax) {
		vr.AddError("El salario debe estar entre 0 y 15000000")
	}
}

// Amount devuelve el monto.
func (s Salary) Amount() decimal.Decimal { return s.amount }

func (s Salary) String() string { return s.amount.String() }

// SalaryFromStorage reconstruye un Salary ya persistido sin revalidarlo.
func SalaryFromStorage(amount decimal.Decimal) Salary { return Salary{amount: amount} }
