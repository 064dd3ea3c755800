package entity

import (
	"time"

	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

// User representa un usuario de la plataforma de créditos.
// ID vacío = transitorio; el repositorio lo asigna al persistir y no cambia después.
type User struct {
	ID             string
	Name           string
	LastName       string
	Birthday       valueobject.Birthday
	Address        string
	Email          valueobject.Email
	BaseSalary     valueobject.Salary
	Identification string
	PasswordHash   string // bcrypt hash, nunca la contraseña en texto plano
	RoleID         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser construye un usuario transitorio (sin ID).
func NewUser(name, lastName string, birthday valueobject.Birthday, address string,
	email valueobject.Email, salary valueobject.Salary, identification, passwordHash, roleID string) *User {
	return &User{
		Name:           name,
		LastName:       lastName,
		Birthday:       birthday,
		Address:        address,
		Email:          email,
		BaseSalary:     salary,
		Identification: identification,
		PasswordHash:   passwordHash,
		RoleID:         roleID,
	}
}

// IsPersisted indica si el usuario ya tiene ID asignado.
func (u *User) IsPersisted() bool { return u.ID != "" }

// WithAddressEmailSalary devuelve una copia con dirección, email y salario reemplazados.
// El resto de campos (nombre, nacimiento, rol, contraseña, identificación) se conserva.
func (u *User) WithAddressEmailSalary(address string, email valueobject.Email, salary valueobject.Salary) *User {
	cp := *u
	cp.Address = address
	cp.Email = email
	cp.BaseSalary = salary
	return &cp
}
