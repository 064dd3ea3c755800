package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/crediya-usuarios/internal/application/ports"
	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/domain/repository"
	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
)

// LoginResult token emitido y usuario autenticado.
type LoginResult struct {
	Token IssuedToken
	User  *entity.User
}

// dummyPassword se hashea una vez para igualar el costo de verificación cuando el email no existe.
const dummyPassword = "crediya-usuario-inexistente"

// AuthUseCase casos de uso de autenticación: verificación de credenciales y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	hasher   ports.PasswordHasher
	tokens   *TokenService

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, hasher ports.PasswordHasher, tokens *TokenService) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

// Authenticate busca el usuario por email y verifica la contraseña contra el hash guardado.
// Devuelve domain.ErrUserNotFound si el email no existe y domain.ErrInvalidCredentials si la
// contraseña no coincide.
func (uc *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	mail, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.FindByEmail(ctx, mail)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario por email: %w", err)
	}
	if user == nil {
		// Mismo trabajo que una contraseña errónea: el tiempo de respuesta no revela si el email existe.
		_, _ = uc.hasher.Verify(ctx, password, uc.unknownUserHash(ctx))
		return nil, domain.ErrUserNotFound
	}
	ok, err := uc.hasher.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verificar contraseña: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login autentica y emite un token para el usuario.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := uc.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

// unknownUserHash devuelve un hash generado con el mismo hasher (y costo) que las contraseñas reales.
func (uc *AuthUseCase) unknownUserHash(ctx context.Context) string {
	uc.dummyOnce.Do(func() {
		if h, err := uc.hasher.Hash(ctx, dummyPassword); err == nil {
			uc.dummyHash = h
		}
	})
	return uc.dummyHash
}
