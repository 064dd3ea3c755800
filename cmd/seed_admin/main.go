// seed_admin registra el administrador inicial con los datos SEED_ADMIN_* de la configuración.
//
// Uso: go run ./cmd/seed_admin
// Si el email ya está registrado no hace nada.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crediya-usuarios/internal/application/user"
	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/command"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/infrastructure/postgres"
	"github.com/jhoicas/crediya-usuarios/internal/infrastructure/security"
	"github.com/jhoicas/crediya-usuarios/pkg/config"
	"github.com/jhoicas/crediya-usuarios/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "seed_admin"})

	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Error().Msg("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son obligatorios")
		os.Exit(1)
	}
	salary, err := decimal.NewFromString(cfg.Seed.AdminBaseSalary)
	if err != nil {
		log.Error().Err(err).Str("value", cfg.Seed.AdminBaseSalary).Msg("SEED_ADMIN_BASE_SALARY inválido")
		os.Exit(1)
	}

	cmd, err := command.NewCreateUserCommand(command.CreateUserInput{
		Name:           cfg.Seed.AdminName,
		LastName:       cfg.Seed.AdminLastName,
		Address:        cfg.Seed.AdminAddress,
		Birthday:       cfg.Seed.AdminBirthday,
		Email:          cfg.Seed.AdminEmail,
		BaseSalary:     &salary,
		Identification: cfg.Seed.AdminIdentification,
		Password:       cfg.Seed.AdminPassword,
		Role:           string(entity.RoleAdmin),
	})
	if err != nil {
		log.Error().Strs("errors", domain.ValidationMessages(err)).Msg("datos del administrador inválidos")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			log.Error().Err(err).Msg("migraciones")
			os.Exit(1)
		}
	}

	roles, err := postgres.LoadRoleCatalog(ctx, postgres.NewRoleRepository(pool), cfg.Roles)
	if err != nil {
		log.Error().Err(err).Msg("catálogo de roles")
		os.Exit(1)
	}

	uc := user.NewCreateUserUseCase(postgres.NewUserRepository(pool), security.NewBcryptHasher(bcrypt.DefaultCost), roles)
	created, err := uc.CreateUser(ctx, cmd)
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Info().Str("email", cmd.Email().Value()).Msg("el administrador ya existe, nada que hacer")
	case err != nil:
		log.Error().Err(err).Msg("registrar administrador")
		os.Exit(1)
	default:
		log.Info().Str("user_id", created.ID).Str("email", created.Email.Value()).Msg("administrador registrado")
	}
}
