// Package command contiene los comandos validados en construcción que alimentan los casos de uso.
// Todos los errores de un comando se acumulan y se reportan juntos.
package command

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

// CreateUserInput datos crudos de registro tal como llegan del exterior.
type CreateUserInput struct {
	Name           string
	LastName       string
	Address        string
	Birthday       string // yyyy-MM-dd
	Email          string
	BaseSalary     *decimal.Decimal
	Identification string
	Password       string
	Role           string
}

// CreateUserCommand comando de registro ya validado. Solo se obtiene con NewCreateUserCommand.
type CreateUserCommand struct {
	name           string
	lastName       string
	address        string
	birthday       valueobject.Birthday
	email          valueobject.Email
	baseSalary     valueobject.Salary
	identification string
	password       string
	role           string
}

// NewCreateUserCommand valida todos los campos y devuelve un *domain.ValidationError con cada problema encontrado.
func NewCreateUserCommand(in CreateUserInput) (CreateUserCommand, error) {
	var vr valueobject.ValidationResult

	name := validatePersonName(in.Name, "El nombre", &vr)
	lastName := validatePersonName(in.LastName, "El apellido", &vr)
	address := validateAddress(in.Address, &vr)
	birthday := valueobject.ValidateBirthdayString(in.Birthday, &vr)

	valueobject.ValidateEmail(in.Email, &vr)
	valueobject.ValidateSalary(in.BaseSalary, &vr)

	identification := validateIdentification(in.Identification, &vr)
	validatePassword(in.Password, &vr)
	role := validateRole(in.Role, &vr)

	if err := vr.Err(); err != nil {
		return CreateUserCommand{}, err
	}
	// Ya validados arriba.
	email, _ := valueobject.NewEmail(in.Email)
	salary, _ := valueobject.NewSalary(in.BaseSalary)
	return CreateUserCommand{
		name:           name,
		lastName:       lastName,
		address:        address,
		birthday:       birthday,
		email:          email,
		baseSalary:     salary,
		identification: identification,
		password:       in.Password,
		role:           role,
	}, nil
}

func (c CreateUserCommand) Name() string                   { return c.name }
func (c CreateUserCommand) LastName() string               { return c.lastName }
func (c CreateUserCommand) Address() string                { return c.address }
func (c CreateUserCommand) Birthday() valueobject.Birthday { return c.birthday }
func (c CreateUserCommand) Email() valueobject.Email       { return c.email }
func (c CreateUserCommand) BaseSalary() valueobject.Salary { return c.baseSalary }
func (c CreateUserCommand) Identification() string         { return c.identification }
func (c CreateUserCommand) Password() string               { return c.password }
func (c CreateUserCommand) Role() string                   { return c.role }
