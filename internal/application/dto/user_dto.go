package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crediya-usuarios/internal/domain/command"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
)

// CreateUserRequest entrada para registrar un usuario (password en texto, se hashea en el use case).
// Las reglas de negocio se validan al construir el comando.
type CreateUserRequest struct {
	Name           string           `json:"name"`
	LastName       string           `json:"lastName"`
	Birthday       string           `json:"birthday"` // yyyy-MM-dd
	Address        string           `json:"address"`
	Email          string           `json:"email"`
	BaseSalary     *decimal.Decimal `json:"baseSalary"`
	Identification string           `json:"identification"`
	Password       string           `json:"password"`
	Role           string           `json:"rol"`
}

// ToInput convierte la petición en la entrada del comando de registro.
func (r CreateUserRequest) ToInput() command.CreateUserInput {
	return command.CreateUserInput{
		Name:           r.Name,
		LastName:       r.LastName,
		Address:        r.Address,
		Birthday:       r.Birthday,
		Email:          r.Email,
		BaseSalary:     r.BaseSalary,
		Identification: r.Identification,
		Password:       r.Password,
		Role:           r.Role,
	}
}

// EditUserRequest entrada para actualizar dirección, email y salario.
type EditUserRequest struct {
	Address    string           `json:"address"`
	Email      string           `json:"email"`
	BaseSalary *decimal.Decimal `json:"baseSalary"`
}

// ToInput convierte la petición en la entrada del comando de edición.
func (r EditUserRequest) ToInput() command.EditUserInput {
	return command.EditUserInput{
		Address:    r.Address,
		Email:      r.Email,
		BaseSalary: r.BaseSalary,
	}
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastName       string          `json:"lastName"`
	Birthday       string          `json:"birthday"`
	Address        string          `json:"address"`
	Email          string          `json:"email"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	Identification string          `json:"identification"`
	Role           string          `json:"rol"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// NewUserResponse mapea la entidad. Si roles no resuelve el id, Role queda con el id crudo.
func NewUserResponse(u *entity.User, roles *entity.RoleCatalog) UserResponse {
	role := u.RoleID
	if roles != nil {
		if name, ok := roles.NameFor(u.RoleID); ok {
			role = string(name)
		}
	}
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		LastName:       u.LastName,
		Birthday:       u.Birthday.String(),
		Address:        u.Address,
		Email:          u.Email.Value(),
		BaseSalary:     u.BaseSalary.Amount(),
		Identification: u.Identification,
		Role:           role,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// NewUserResponses mapea una lista; nunca devuelve nil.
func NewUserResponses(users []*entity.User, roles *entity.RoleCatalog) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u, roles))
	}
	return out
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido y perfil del usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"` // minutos
	TokenType string       `json:"tokenType"`
	User      UserResponse `json:"user"`
}

// MeResponse claims verificados del token presentado.
type MeResponse struct {
	UserID         string          `json:"uid"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	LastName       string          `json:"lastName"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	Identification string          `json:"identification"`
	Role           string          `json:"rol"`
	Authority      string          `json:"authority"`
	ExpiresAt      time.Time       `json:"expiresAt"`
}
