package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// AuthorityPrefix prefijo de la autoridad derivada del rol (ROLE_ADMIN, ROLE_ASESOR...).
const AuthorityPrefix = "ROLE_"

var errEmptySecret = errors.New("jwt: secret vacío")

// Claims incluye los claims estándar JWT más el perfil del usuario.
// Subject es el email; Role lleva el nombre del rol (ADMIN, USER, ASESOR) para que el
// middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID         string          `json:"uid"`
	Name           string          `json:"name"`
	LastName       string          `json:"lastName"`
	Email          string          `json:"email"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	Identification string          `json:"identification"`
	Role           string          `json:"rol"`
}

// Authority devuelve la autoridad del rol con prefijo, p. ej. "ROLE_ADMIN".
func (c *Claims) Authority() string {
	if c.Role == "" {
		return ""
	}
	return AuthorityPrefix + c.Role
}

// HasAnyRole indica si el rol del token está entre roles.
func (c *Claims) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

// Generate firma claims con HS256. El llamador fija los claims registrados (iss, aud, iat, exp).
func Generate(secret string, claims Claims) (string, error) {
	if secret == "" {
		return "", errEmptySecret
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseOptions restricciones que debe cumplir el token además de la firma.
type ParseOptions struct {
	Issuer   string
	Audience string
	// Now reloj usado para validar exp/iat; nil = time.Now.
	Now func() time.Time
}

// Parse valida firma HS256, expiración, emisor y audiencia, y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string, opts ParseOptions) (*Claims, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(opts.Audience))
	}
	if opts.Now != nil {
		parserOpts = append(parserOpts, jwt.WithTimeFunc(opts.Now))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, parserOpts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

// IsExpired indica si err proviene de un token vencido.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
