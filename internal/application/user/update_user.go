package user

import (
	"context"
	"strings"

	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/command"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/domain/repository"
	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

// TxRunner ejecuta fn dentro de una transacción con un repositorio atado a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository) error) error
}

// UpdateUserUseCase reemplaza dirección, email y salario de un usuario existente.
type UpdateUserUseCase struct {
	repo repository.UserRepository
	tx   TxRunner
}

// NewUpdateUserUseCase construye el caso de uso.
func NewUpdateUserUseCase(repo repository.UserRepository) *UpdateUserUseCase {
	return &UpdateUserUseCase{repo: repo}
}

// WithTxRunner hace que lectura, verificación de email y escritura ocurran en una sola transacción.
func (uc *UpdateUserUseCase) WithTxRunner(tx TxRunner) *UpdateUserUseCase {
	uc.tx = tx
	return uc
}

// within ejecuta fn con el repositorio transaccional si hay runner, o con el base si no.
func (uc *UpdateUserUseCase) within(ctx context.Context, fn func(repo repository.UserRepository) error) error {
	if uc.tx == nil {
		return fn(uc.repo)
	}
	return uc.tx.Run(ctx, fn)
}

// EditUser actualiza el usuario identificado por id.
func (uc *UpdateUserUseCase) EditUser(ctx context.Context, id string, cmd command.EditUserCommand) (*entity.User, error) {
	if err := validateEdit(cmd); err != nil {
		return nil, err
	}
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	var saved *entity.User
	err = uc.within(ctx, func(repo repository.UserRepository) error {
		existing, err := repo.FindByID(ctx, userID)
		if err != nil {
			return wrapInfra("buscar usuario por id", err)
		}
		if existing == nil {
			return domain.ErrUserNotFound
		}
		saved, err = apply(ctx, repo, existing, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// EditUserByEmail actualiza el usuario cuyo email actual es email.
func (uc *UpdateUserUseCase) EditUserByEmail(ctx context.Context, email valueobject.Email, cmd command.EditUserCommand) (*entity.User, error) {
	if err := validateEdit(cmd); err != nil {
		return nil, err
	}
	var saved *entity.User
	err := uc.within(ctx, func(repo repository.UserRepository) error {
		existing, err := repo.FindByEmail(ctx, email)
		if err != nil {
			return wrapInfra("buscar usuario por email", err)
		}
		if existing == nil {
			return domain.ErrUserNotFound
		}
		saved, err = apply(ctx, repo, existing, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func apply(ctx context.Context, repo repository.UserRepository, existing *entity.User, cmd command.EditUserCommand) (*entity.User, error) {
	taken, err := repo.ExistsByEmailExcludingID(ctx, cmd.Email(), existing.ID)
	if err != nil {
		return nil, wrapInfra("verificar email", err)
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}
	updated := existing.WithAddressEmailSalary(cmd.Address(), cmd.Email(), cmd.BaseSalary())
	saved, err := repo.Update(ctx, updated)
	if err != nil {
		return nil, wrapInfra("actualizar usuario", err)
	}
	return saved, nil
}

func validateEdit(cmd command.EditUserCommand) error {
	var vr valueobject.ValidationResult
	if strings.TrimSpace(cmd.Address()) == "" {
		vr.AddError("La dirección es obligatoria")
	}
	if cmd.Email().IsZero() {
		vr.AddError("El email es obligatorio")
	}
	return vr.Err()
}
