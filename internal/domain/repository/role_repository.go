package repository

import (
	"context"

	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
)

// RoleRepository lectura de la tabla de roles para construir el catálogo cuando no viene por configuración.
type RoleRepository interface {
	List(ctx context.Context) ([]entity.Role, error)
}
