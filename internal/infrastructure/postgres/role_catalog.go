package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/domain/repository"
	"github.com/jhoicas/crediya-usuarios/pkg/config"
)

// LoadRoleCatalog arma el catálogo de roles. Los ids configurados tienen prioridad;
// si no vienen, se leen de la tabla roles.
func LoadRoleCatalog(ctx context.Context, roles repository.RoleRepository, cfg config.RolesConfig) (*entity.RoleCatalog, error) {
	if cfg.Configured() {
		ids := make(map[entity.RoleName]string, 3)
		for name, id := range cfg.ByName() {
			ids[entity.RoleName(name)] = id
		}
		catalog, err := entity.NewRoleCatalog(ids)
		if err != nil {
			return nil, fmt.Errorf("roles configurados: %w", err)
		}
		return catalog, nil
	}

	list, err := roles.List(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := entity.RoleCatalogFromRoles(list)
	if err != nil {
		return nil, fmt.Errorf("roles persistidos: %w", err)
	}
	return catalog, nil
}
