package auth

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/pkg/jwt"
)

// TokenTypeBearer tipo de token devuelto al cliente.
const TokenTypeBearer = "Bearer"

// TokenConfig configuración para emisión y verificación de tokens.
type TokenConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	ExpMinutes int
}

// Validate rechaza configuraciones que producirían tokens inválidos.
func (c TokenConfig) Validate() error {
	switch {
	case c.Secret == "":
		return errors.New("token: secret vacío")
	case c.Issuer == "":
		return errors.New("token: issuer vacío")
	case c.Audience == "":
		return errors.New("token: audience vacío")
	case c.ExpMinutes <= 0:
		return fmt.Errorf("token: expiración debe ser positiva, recibido %d", c.ExpMinutes)
	}
	return nil
}

// ErrUnresolvedRole el rol del usuario no está en el catálogo; no se emite token.
var ErrUnresolvedRole = errors.New("token: rol del usuario no reconocido")

// IssuedToken token firmado y metadatos para el cliente.
type IssuedToken struct {
	Token            string
	ExpiresInMinutes int
	TokenType        string
}

// TokenService emite y verifica JWT HS256 con emisor, audiencia y expiración fijos.
// No guarda estado mutable; es seguro para uso concurrente.
type TokenService struct {
	cfg   TokenConfig
	roles *entity.RoleCatalog
	now   func() time.Time
}

// NewTokenService valida cfg y construye el servicio.
func NewTokenService(cfg TokenConfig, roles *entity.RoleCatalog) (*TokenService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if roles == nil {
		return nil, errors.New("token: catálogo de roles requerido")
	}
	return &TokenService{cfg: cfg, roles: roles, now: time.Now}, nil
}

// Issue firma un token para user con sub=email, iat=ahora y exp=ahora+ExpMinutes.
func (s *TokenService) Issue(user *entity.User) (IssuedToken, error) {
	if user == nil {
		return IssuedToken{}, errors.New("token: usuario nil")
	}
	role, ok := s.roles.NameFor(user.RoleID)
	if !ok {
		return IssuedToken{}, fmt.Errorf("%w: %q", ErrUnresolvedRole, user.RoleID)
	}
	now := s.now()
	claims := jwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   user.Email.Value(),
			Audience:  gojwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Duration(s.cfg.ExpMinutes) * time.Minute)),
		},
		UserID:         user.ID,
		Name:           user.Name,
		LastName:       user.LastName,
		Email:          user.Email.Value(),
		BaseSalary:     user.BaseSalary.Amount(),
		Identification: user.Identification,
		Role:           string(role),
	}
	signed, err := jwt.Generate(s.cfg.Secret, claims)
	if err != nil {
		return IssuedToken{}, fmt.Errorf("firmar token: %w", err)
	}
	return IssuedToken{
		Token:            signed,
		ExpiresInMinutes: s.cfg.ExpMinutes,
		TokenType:        TokenTypeBearer,
	}, nil
}

// Verify valida firma, expiración, emisor y audiencia. Cualquier fallo se reporta como
// domain.ErrInvalidToken con la causa envuelta.
func (s *TokenService) Verify(token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(s.cfg.Secret, token, jwt.ParseOptions{
		Issuer:   s.cfg.Issuer,
		Audience: s.cfg.Audience,
		Now:      s.now,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	return claims, nil
}
