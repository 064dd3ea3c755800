package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crediya-usuarios/internal/application/dto"
	"github.com/jhoicas/crediya-usuarios/internal/application/user"
	"github.com/jhoicas/crediya-usuarios/internal/domain/command"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
	"github.com/jhoicas/crediya-usuarios/pkg/logger"
	"github.com/jhoicas/crediya-usuarios/pkg/validation"
)

// UserHandlerDeps casos de uso que atiende UserHandler.
type UserHandlerDeps struct {
	Create    *user.CreateUserUseCase
	Update    *user.UpdateUserUseCase
	Delete    *user.DeleteUserUseCase
	Get       *user.GetUserUseCase
	Roles     *entity.RoleCatalog
	Validator *validation.Validator
	Log       *logger.Logger
}

// UserHandler maneja el CRUD de usuarios.
type UserHandler struct {
	deps UserHandlerDeps
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(deps UserHandlerDeps) *UserHandler {
	return &UserHandler{deps: deps}
}

// Create godoc
// @Summary      Registrar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateUserRequest  true  "datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return writeBadRequest(c, CodeInvalidBody, err)
	}
	cmd, err := command.NewCreateUserCommand(in.ToInput())
	if err != nil {
		return writeError(c, h.deps.Log, err)
	}
	created, err := h.deps.Create.CreateUser(c.UserContext(), cmd)
	if err != nil {
		return writeError(c, h.deps.Log, err)
	}
	h.deps.Log.Info().Str("user_id", created.ID).Str("by", GetUserID(c)).Msg("usuario creado")
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(created, h.deps.Roles))
}

// List godoc
// @Summary      Listar usuarios o buscar por email
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        email  query  string  false  "email exacto"
// @Success      200   {array}   dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	if email := c.Query("email"); email != "" {
		found, err := h.deps.Get.FindUserByEmail(c.UserContext(), email)
		if err != nil {
			return writeError(c, h.deps.Log, err)
		}
		return c.JSON(dto.NewUserResponse(found, h.deps.Roles))
	}
	users, err := h.deps.Get.FindAllUsers(c.UserContext())
	if err != nil {
		return writeError(c, h.deps.Log, err)
	}
	return c.JSON(dto.NewUserResponses(users, h.deps.Roles))
}

// GetByID godoc
// @Summary      Obtener usuario por id
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "UUID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.deps.Validator.Var("id", id, "required,uuid"); err != nil {
		return writeBadRequest(c, CodeValidation, err)
	}
	found, err := h.deps.Get.FindUserByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.deps.Log, err)
	}
	return c.JSON(dto.NewUserResponse(found, h.deps.Roles))
}

// Update godoc
// @Summary      Actualizar dirección, email y salario por id
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "UUID del usuario"
// @Param        body  body  dto.EditUserRequest   true  "campos editables"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.deps.Validator.Var("id", id, "required,uuid"); err != nil {
		return writeBadRequest(c, CodeValidation, err)
	}
	cmd, err := h.parseEdit(c)
	if err != nil {
		return err
	}
	if cmd == nil {
		return nil
	}
	updated, err := h.deps.Update.EditUser(c.UserContext(), id, *cmd)
	if err != nil {
		return writeError(c, h.deps.Log, err)
	}
	h.deps.Log.Info().Str("user_id", updated.ID).Str("by", GetUserID(c)).Msg("usuario actualizado")
	return c.JSON(dto.NewUserResponse(updated, h.deps.Roles))
}

// UpdateByEmail godoc
// @Summary      Actualizar dirección, email y salario por email
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  path  string               true  "email actual"
// @Param        body   body  dto.EditUserRequest  true  "campos editables"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/email/{email} [put]
func (h *UserHandler) UpdateByEmail(c *fiber.Ctx) error {
	current, err := valueobject.NewEmail(pathEmail(c))
	if err != nil {
		return writeError(c, h.deps.Log, err)
	}
	cmd, err := h.parseEdit(c)
	if err != nil {
		return err
	}
	if cmd == nil {
		return nil
	}
	updated, err := h.deps.Update.EditUserByEmail(c.UserContext(), current, *cmd)
	if err != nil {
		return writeError(c, h.deps.Log, err)
	}
	h.deps.Log.Info().Str("user_id", updated.ID).Str("by", GetUserID(c)).Msg("usuario actualizado")
	return c.JSON(dto.NewUserResponse(updated, h.deps.Roles))
}

// DeleteByEmail godoc
// @Summary      Eliminar usuario por email
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        email  path  string  true  "email"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/email/{email} [delete]
func (h *UserHandler) DeleteByEmail(c *fiber.Ctx) error {
	email := pathEmail(c)
	if err := h.deps.Delete.DeleteUser(c.UserContext(), email); err != nil {
		return writeError(c, h.deps.Log, err)
	}
	h.deps.Log.Info().Str("by", GetUserID(c)).Msg("usuario eliminado por email")
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteByID godoc
// @Summary      Eliminar usuario por id
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "UUID del usuario"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/{id} [delete]
func (h *UserHandler) DeleteByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.deps.Validator.Var("id", id, "required,uuid"); err != nil {
		return writeBadRequest(c, CodeValidation, err)
	}
	if err := h.deps.Delete.DeleteUserByID(c.UserContext(), id); err != nil {
		return writeError(c, h.deps.Log, err)
	}
	h.deps.Log.Info().Str("user_id", id).Str("by", GetUserID(c)).Msg("usuario eliminado")
	return c.SendStatus(fiber.StatusNoContent)
}

// parseEdit decodifica y valida el cuerpo de edición. Si ya respondió con error devuelve (nil, nil).
func (h *UserHandler) parseEdit(c *fiber.Ctx) (*command.EditUserCommand, error) {
	var in dto.EditUserRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, writeBadRequest(c, CodeInvalidBody, err)
	}
	cmd, err := command.NewEditUserCommand(in.ToInput())
	if err != nil {
		return nil, writeError(c, h.deps.Log, err)
	}
	return &cmd, nil
}

// pathEmail devuelve el parámetro :email decodificado (%40 -> @).
func pathEmail(c *fiber.Ctx) string {
	raw := c.Params("email")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
