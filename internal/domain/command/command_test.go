package command_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/command"
)

func salaryPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func validCreateInput() command.CreateUserInput {
	return command.CreateUserInput{
		Name:           "Juan",
		LastName:       "Pérez",
		Address:        "Calle 123 # 45-67, Bogotá",
		Birthday:       "1990-05-15",
		Email:          "juan@example.com",
		BaseSalary:     salaryPtr(2_500_000),
		Identification: "1020304050",
		Password:       "secreta123",
		Role:           "ADMIN",
	}
}

func TestNewCreateUserCommand_Valido(t *testing.T) {
	in := validCreateInput()
	in.Name = "  Juan  "
	cmd, err := command.NewCreateUserCommand(in)
	require.NoError(t, err)

	assert.Equal(t, "Juan", cmd.Name())
	assert.Equal(t, "Pérez", cmd.LastName())
	assert.Equal(t, "1990-05-15", cmd.Birthday().String())
	assert.Equal(t, "juan@example.com", cmd.Email().Value())
	assert.True(t, cmd.BaseSalary().Amount().Equal(decimal.NewFromInt(2_500_000)))
	assert.Equal(t, "1020304050", cmd.Identification())
	assert.Equal(t, "secreta123", cmd.Password())
	assert.Equal(t, "ADMIN", cmd.Role())
}

func TestNewCreateUserCommand_AcumulaTodosLosErrores(t *testing.T) {
	_, err := command.NewCreateUserCommand(command.CreateUserInput{
		Name:     "J",
		Address:  "corta",
		Birthday: "15/05/1990",
		Email:    "invalid-email",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	assert.Equal(t, []string{
		"El nombre debe tener al menos 2 caracteres",
		"El apellido es obligatorio",
		"La dirección debe tener al menos 10 caracteres",
		"Formato de fecha inválido, use yyyy-MM-dd",
		"El email no tiene el formato correcto",
		"El salario es obligatorio",
		"El documento de identidad es obligatorio",
		"La contraseña es obligatoria",
		"El rol es obligatorio",
	}, domain.ValidationMessages(err))
}

func TestNewCreateUserCommand_LimitesDeLongitud(t *testing.T) {
	in := validCreateInput()
	in.Name = strings.Repeat("a", 51)
	in.Address = strings.Repeat("b", 201)
	in.Password = "corta"
	_, err := command.NewCreateUserCommand(in)
	require.Error(t, err)
	assert.Equal(t, []string{
		"El nombre no puede tener más de 50 caracteres",
		"La dirección no puede tener más de 200 caracteres",
		"La contraseña debe tener al menos 8 caracteres",
	}, domain.ValidationMessages(err))
}

func TestNewCreateUserCommand_SalarioFueraDeRango(t *testing.T) {
	in := validCreateInput()
	in.BaseSalary = salaryPtr(15_000_001)
	_, err := command.NewCreateUserCommand(in)
	require.Error(t, err)
	assert.Equal(t, []string{"El salario debe estar entre 0 y 15000000"}, domain.ValidationMessages(err))
}

func TestNewEditUserCommand(t *testing.T) {
	cmd, err := command.NewEditUserCommand(command.EditUserInput{
		Address:    "  Carrera 7 # 10-20  ",
		Email:      "nuevo@example.com",
		BaseSalary: salaryPtr(3_000_000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Carrera 7 # 10-20", cmd.Address())
	assert.Equal(t, "nuevo@example.com", cmd.Email().Value())

	_, err = command.NewEditUserCommand(command.EditUserInput{Address: "   "})
	require.Error(t, err)
	assert.Equal(t, []string{
		"La dirección es obligatoria",
		"El email es obligatorio",
		"El salario es obligatorio",
	}, domain.ValidationMessages(err))
}
