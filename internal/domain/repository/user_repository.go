package repository

import (
	"context"

	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	// Save persiste un usuario transitorio y devuelve la copia con ID asignado.
	// Si el email ya existe devuelve domain.ErrEmailAlreadyExists.
	Save(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email valueobject.Email) error
	ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error)
	// ExistsByEmailExcludingID indica si otro usuario distinto de id ya usa el email.
	ExistsByEmailExcludingID(ctx context.Context, email valueobject.Email, id string) (bool, error)
}
