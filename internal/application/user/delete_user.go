package user

import (
	"context"

	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/repository"
	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

// DeleteUserUseCase elimina usuarios existentes. Las cascadas, si las hay, son responsabilidad del almacén.
type DeleteUserUseCase struct {
	repo repository.UserRepository
}

// NewDeleteUserUseCase construye el caso de uso.
func NewDeleteUserUseCase(repo repository.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{repo: repo}
}

// DeleteUser valida el email, confirma que el usuario existe y lo elimina por email.
func (uc *DeleteUserUseCase) DeleteUser(ctx context.Context, email string) error {
	mail, err := valueobject.NewEmail(email)
	if err != nil {
		return err
	}
	existing, err := uc.repo.FindByEmail(ctx, mail)
	if err != nil {
		return wrapInfra("buscar usuario por email", err)
	}
	if existing == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.DeleteByEmail(ctx, mail); err != nil {
		return wrapInfra("eliminar usuario", err)
	}
	return nil
}

// DeleteUserByID elimina el usuario identificado por id.
func (uc *DeleteUserUseCase) DeleteUserByID(ctx context.Context, id string) error {
	userID, err := parseUserID(id)
	if err != nil {
		return err
	}
	existing, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return wrapInfra("buscar usuario por id", err)
	}
	if existing == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.repo.DeleteByID(ctx, userID); err != nil {
		return wrapInfra("eliminar usuario", err)
	}
	return nil
}
