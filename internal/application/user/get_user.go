package user

import (
	"context"

	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/domain/repository"
	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

// GetUserUseCase consultas de usuarios.
type GetUserUseCase struct {
	repo             repository.UserRepository
	emptyListIsError bool
}

// NewGetUserUseCase construye el caso de uso. Con emptyListIsError=true, FindAllUsers
// devuelve un error de validación "No hay registros." cuando no hay usuarios.
func NewGetUserUseCase(repo repository.UserRepository, emptyListIsError bool) *GetUserUseCase {
	return &GetUserUseCase{repo: repo, emptyListIsError: emptyListIsError}
}

// FindUserByEmail busca un usuario por email.
func (uc *GetUserUseCase) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	mail, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}
	u, err := uc.repo.FindByEmail(ctx, mail)
	if err != nil {
		return nil, wrapInfra("buscar usuario por email", err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// FindUserByID busca un usuario por id.
func (uc *GetUserUseCase) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}
	u, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapInfra("buscar usuario por id", err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// FindAllUsers lista todos los usuarios. Una lista vacía es un resultado válido salvo que
// el caso de uso se haya construido con emptyListIsError.
func (uc *GetUserUseCase) FindAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, wrapInfra("listar usuarios", err)
	}
	if len(users) == 0 {
		if uc.emptyListIsError {
			return nil, domain.NewValidationError("No hay registros.")
		}
		return []*entity.User{}, nil
	}
	return users, nil
}
