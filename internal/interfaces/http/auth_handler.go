package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crediya-usuarios/internal/application/auth"
	"github.com/jhoicas/crediya-usuarios/internal/application/dto"
	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/pkg/logger"
	"github.com/jhoicas/crediya-usuarios/pkg/validation"
)

// AuthHandler maneja login y consulta del token actual.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	roles     *entity.RoleCatalog
	validator *validation.Validator
	log       *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, roles *entity.RoleCatalog, v *validation.Validator, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, roles: roles, validator: v, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/v1/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadRequest(c, CodeInvalidBody, err)
	}
	if err := h.validator.Struct(in); err != nil {
		return writeBadRequest(c, CodeValidation, err)
	}
	out, err := h.uc.Login(c.UserContext(), in.Email, in.Password)
	if errors.Is(err, domain.ErrUserNotFound) {
		// Email desconocido y contraseña errónea responden igual.
		err = domain.ErrInvalidCredentials
	}
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("user_id", out.User.ID).Msg("login exitoso")
	return c.JSON(dto.LoginResponse{
		Token:     out.Token.Token,
		ExpiresIn: out.Token.ExpiresInMinutes,
		TokenType: out.Token.TokenType,
		User:      dto.NewUserResponse(out.User, h.roles),
	})
}

// Me godoc
// @Summary      Claims del token actual
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.MeResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/v1/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: CodeUnauthorized, Message: msgInvalidCredentials})
	}
	resp := dto.MeResponse{
		UserID:         claims.UserID,
		Email:          claims.Subject,
		Name:           claims.Name,
		LastName:       claims.LastName,
		BaseSalary:     claims.BaseSalary,
		Identification: claims.Identification,
		Role:           claims.Role,
		Authority:      claims.Authority(),
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	return c.JSON(resp)
}
