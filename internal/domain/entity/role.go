package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RoleName conjunto cerrado de roles del sistema.
type RoleName string

// Roles válidos para User.
const (
	RoleAdmin  RoleName = "ADMIN"
	RoleUser   RoleName = "USER"
	RoleAsesor RoleName = "ASESOR"
)

// RoleNames devuelve los roles en orden estable.
func RoleNames() []RoleName {
	return []RoleName{RoleAdmin, RoleUser, RoleAsesor}
}

// ParseRoleName normaliza (trim + mayúsculas) y valida el nombre contra el conjunto cerrado.
func ParseRoleName(name string) (RoleName, bool) {
	// Un Caser no se comparte entre goroutines.
	n := RoleName(cases.Upper(language.Und).String(strings.TrimSpace(name)))
	for _, r := range RoleNames() {
		if n == r {
			return r, true
		}
	}
	return "", false
}

// Role rol persistido (tabla roles).
type Role struct {
	ID          string
	Name        RoleName
	Description string
}

// RoleCatalog mapea cada rol a su identificador opaco. Se carga desde configuración o desde la tabla roles;
// es inmutable después de construido y seguro para uso concurrente.
type RoleCatalog struct {
	byName map[RoleName]string
	byID   map[string]RoleName
}

// NewRoleCatalog exige un id UUID distinto para cada uno de los roles del conjunto cerrado.
func NewRoleCatalog(ids map[RoleName]string) (*RoleCatalog, error) {
	c := &RoleCatalog{
		byName: make(map[RoleName]string, len(ids)),
		byID:   make(map[string]RoleName, len(ids)),
	}
	for raw, id := range ids {
		name, ok := ParseRoleName(string(raw))
		if !ok {
			return nil, fmt.Errorf("catálogo de roles: rol desconocido %q", raw)
		}
		parsed, err := uuid.Parse(strings.TrimSpace(id))
		if err != nil {
			return nil, fmt.Errorf("catálogo de roles: id inválido para %s: %w", name, err)
		}
		key := parsed.String()
		if prev, dup := c.byID[key]; dup {
			return nil, fmt.Errorf("catálogo de roles: id %s repetido en %s y %s", key, prev, name)
		}
		c.byName[name] = key
		c.byID[key] = name
	}
	for _, r := range RoleNames() {
		if _, ok := c.byName[r]; !ok {
			return nil, fmt.Errorf("catálogo de roles: falta el id de %s", r)
		}
	}
	return c, nil
}

// RoleCatalogFromRoles construye el catálogo a partir de roles persistidos.
func RoleCatalogFromRoles(roles []Role) (*RoleCatalog, error) {
	ids := make(map[RoleName]string, len(roles))
	for _, r := range roles {
		ids[r.Name] = r.ID
	}
	return NewRoleCatalog(ids)
}

// IDFor resuelve un nombre de rol (sin distinguir mayúsculas) a su id.
func (c *RoleCatalog) IDFor(name string) (string, bool) {
	n, ok := ParseRoleName(name)
	if !ok {
		return "", false
	}
	id, ok := c.byName[n]
	return id, ok
}

// NameFor resuelve un id de rol a su nombre.
func (c *RoleCatalog) NameFor(id string) (RoleName, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	n, ok := c.byID[parsed.String()]
	return n, ok
}
