package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo lee el catálogo de roles de la tabla roles.
type RoleRepo struct {
	db Querier
}

// NewRoleRepository construye el adaptador de roles.
func NewRoleRepository(db Querier) *RoleRepo {
	return &RoleRepo{db: db}
}

// List devuelve todos los roles persistidos. Nombres fuera del conjunto cerrado se ignoran.
func (r *RoleRepo) List(ctx context.Context) ([]entity.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var roles []entity.Role
	for rows.Next() {
		var (
			id, name, description string
		)
		if err := rows.Scan(&id, &name, &description); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roleName, ok := entity.ParseRoleName(name)
		if !ok {
			continue
		}
		roles = append(roles, entity.Role{ID: id, Name: roleName, Description: description})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}
