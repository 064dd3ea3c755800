package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// MigrationsFS devuelve las migraciones embebidas con raíz en el directorio migrations.
func MigrationsFS() (fs.FS, error) {
	return fs.Sub(embedMigrations, "migrations")
}

// MigrationResult resumen de una migración aplicada.
type MigrationResult struct {
	Version int64
	Source  string
}

// Migrate aplica las migraciones pendientes sobre la base del pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]MigrationResult, error) {
	fsys, err := MigrationsFS()
	if err != nil {
		return nil, fmt.Errorf("migraciones: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("crear provider goose: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("aplicar migraciones: %w", err)
	}

	out := make([]MigrationResult, 0, len(results))
	for _, r := range results {
		out = append(out, MigrationResult{Version: r.Source.Version, Source: r.Source.Path})
	}
	return out, nil
}
