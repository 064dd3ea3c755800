package command

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

// EditUserInput datos crudos de actualización. Nombre, apellido, nacimiento, rol,
// identificación y contraseña no se editan por esta vía.
type EditUserInput struct {
	Address    string
	Email      string
	BaseSalary *decimal.Decimal
}

// EditUserCommand comando de actualización validado.
type EditUserCommand struct {
	address    string
	email      valueobject.Email
	baseSalary valueobject.Salary
}

// NewEditUserCommand valida dirección, email y salario acumulando todos los errores.
func NewEditUserCommand(in EditUserInput) (EditUserCommand, error) {
	var vr valueobject.ValidationResult
	address := validateAddress(in.Address, &vr)
	valueobject.ValidateEmail(in.Email, &vr)
	valueobject.ValidateSalary(in.BaseSalary, &vr)
	if err := vr.Err(); err != nil {
		return EditUserCommand{}, err
	}
	email, _ := valueobject.NewEmail(in.Email)
	salary, _ := valueobject.NewSalary(in.BaseSalary)
	return EditUserCommand{
		address:    address,
		email:      email,
		baseSalary: salary,
	}, nil
}

func (c EditUserCommand) Address() string                { return c.address }
func (c EditUserCommand) Email() valueobject.Email       { return c.email }
func (c EditUserCommand) BaseSalary() valueobject.Salary { return c.baseSalary }
