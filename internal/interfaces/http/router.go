package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crediya-usuarios/internal/application/auth"
	"github.com/jhoicas/crediya-usuarios/internal/application/user"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/pkg/logger"
	"github.com/jhoicas/crediya-usuarios/pkg/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Tokens       TokenVerifier
	CreateUserUC *user.CreateUserUseCase
	UpdateUserUC *user.UpdateUserUseCase
	DeleteUserUC *user.DeleteUserUseCase
	GetUserUC    *user.GetUserUseCase
	Roles        *entity.RoleCatalog
	Validator    *validation.Validator
	Log          *logger.Logger
}

// Roles con acceso a la gestión de usuarios.
var userAdminRoles = []string{string(entity.RoleAdmin), string(entity.RoleAsesor)}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Roles, v, log.Named("auth"))
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.Tokens)
	api.Get("/me", requireAuth, authHandler.Me)

	// Usuarios: ADMIN o ASESOR
	users := api.Group("/usuarios", requireAuth, RequireRole(userAdminRoles...))
	userHandler := NewUserHandler(UserHandlerDeps{
		Create:    deps.CreateUserUC,
		Update:    deps.UpdateUserUC,
		Delete:    deps.DeleteUserUC,
		Get:       deps.GetUserUC,
		Roles:     deps.Roles,
		Validator: v,
		Log:       log.Named("usuarios"),
	})
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/email/:email", userHandler.UpdateByEmail)
	users.Delete("/email/:email", userHandler.DeleteByEmail)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.DeleteByID)
}
