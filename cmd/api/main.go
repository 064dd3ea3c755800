package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crediya-usuarios/internal/application/auth"
	"github.com/jhoicas/crediya-usuarios/internal/application/user"
	"github.com/jhoicas/crediya-usuarios/internal/infrastructure/postgres"
	"github.com/jhoicas/crediya-usuarios/internal/infrastructure/security"
	httpRouter "github.com/jhoicas/crediya-usuarios/internal/interfaces/http"
	"github.com/jhoicas/crediya-usuarios/pkg/config"
	"github.com/jhoicas/crediya-usuarios/pkg/logger"
	"github.com/jhoicas/crediya-usuarios/pkg/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.HTTP.Addr()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		for _, m := range applied {
			log.Info().Int64("version", m.Version).Str("source", m.Source).Msg("migración aplicada")
		}
	}

	roles, err := postgres.LoadRoleCatalog(ctx, postgres.NewRoleRepository(pool), cfg.Roles)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de roles")
	}

	userRepo := postgres.NewUserRepository(pool)
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		ExpMinutes: cfg.JWT.ExpirationMinutes,
	}, roles)
	if err != nil {
		log.Fatal().Err(err).Msg("servicio de tokens")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Crediya Usuarios API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(userRepo, hasher, tokens),
		Tokens:       tokens,
		CreateUserUC: user.NewCreateUserUseCase(userRepo, hasher, roles),
		UpdateUserUC: user.NewUpdateUserUseCase(userRepo).WithTxRunner(postgres.NewTxRunner(pool)),
		DeleteUserUC: user.NewDeleteUserUseCase(userRepo),
		GetUserUC:    user.NewGetUserUseCase(userRepo, cfg.Users.EmptyListIsError),
		Roles:        roles,
		Validator:    validation.New(),
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
