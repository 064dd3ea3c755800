package user

import (
	"context"
	"strings"

	"github.com/jhoicas/crediya-usuarios/internal/application/ports"
	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/command"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/domain/repository"
	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

// CreateUserUseCase registra usuarios nuevos.
type CreateUserUseCase struct {
	repo   repository.UserRepository
	hasher ports.PasswordHasher
	roles  *entity.RoleCatalog
}

// NewCreateUserUseCase construye el caso de uso.
func NewCreateUserUseCase(repo repository.UserRepository, hasher ports.PasswordHasher, roles *entity.RoleCatalog) *CreateUserUseCase {
	return &CreateUserUseCase{repo: repo, hasher: hasher, roles: roles}
}

// CreateUser valida campos obligatorios, resuelve el rol, verifica que el email no exista,
// hashea la contraseña y persiste el usuario.
//
// La verificación de email y el guardado son dos viajes al repositorio sin transacción;
// si dos registros concurrentes pasan la verificación, la restricción única del almacén
// rechaza el segundo y el repositorio devuelve domain.ErrEmailAlreadyExists.
func (uc *CreateUserUseCase) CreateUser(ctx context.Context, cmd command.CreateUserCommand) (*entity.User, error) {
	if err := validateCreate(cmd); err != nil {
		return nil, err
	}

	roleID, ok := uc.roles.IDFor(cmd.Role())
	if !ok {
		return nil, domain.NewValidationError("Rol inválido: " + cmd.Role())
	}

	exists, err := uc.repo.ExistsByEmail(ctx, cmd.Email())
	if err != nil {
		return nil, wrapInfra("verificar email", err)
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := uc.hasher.Hash(ctx, cmd.Password())
	if err != nil {
		return nil, wrapInfra("hashear contraseña", err)
	}

	user := entity.NewUser(
		cmd.Name(),
		cmd.LastName(),
		cmd.Birthday(),
		cmd.Address(),
		cmd.Email(),
		cmd.BaseSalary(),
		cmd.Identification(),
		hash,
		roleID,
	)
	saved, err := uc.repo.Save(ctx, user)
	if err != nil {
		return nil, wrapInfra("guardar usuario", err)
	}
	return saved, nil
}

// validateCreate cubre también el valor cero de CreateUserCommand, que no pasa por su constructor.
func validateCreate(cmd command.CreateUserCommand) error {
	var vr valueobject.ValidationResult
	if strings.TrimSpace(cmd.Name()) == "" {
		vr.AddError("El nombre es obligatorio")
	}
	if strings.TrimSpace(cmd.LastName()) == "" {
		vr.AddError("El apellido es obligatorio")
	}
	if strings.TrimSpace(cmd.Address()) == "" {
		vr.AddError("La dirección es obligatoria")
	}
	if cmd.Email().IsZero() {
		vr.AddError("El email es obligatorio")
	}
	return vr.Err()
}
