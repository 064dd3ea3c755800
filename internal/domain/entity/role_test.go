package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
)

const (
	adminID  = "b34c1721-c4c2-42da-907c-aed4cd00788c"
	userID   = "4595846d-823f-466a-9ac9-b9707c27dd18"
	asesorID = "51688f39-44c2-4216-a0aa-bd0351b79dd0"
)

func testCatalog(t *testing.T) *entity.RoleCatalog {
	t.Helper()
	c, err := entity.NewRoleCatalog(map[entity.RoleName]string{
		entity.RoleAdmin:  adminID,
		entity.RoleUser:   userID,
		entity.RoleAsesor: asesorID,
	})
	require.NoError(t, err)
	return c
}

func TestParseRoleName_Normaliza(t *testing.T) {
	r, ok := entity.ParseRoleName("  asesor ")
	require.True(t, ok)
	assert.Equal(t, entity.RoleAsesor, r)

	_, ok = entity.ParseRoleName("superadmin")
	assert.False(t, ok)
	_, ok = entity.ParseRoleName("")
	assert.False(t, ok)
}

func TestRoleCatalog_ResuelveEnAmbosSentidos(t *testing.T) {
	c := testCatalog(t)

	id, ok := c.IDFor("admin")
	require.True(t, ok)
	assert.Equal(t, adminID, id)

	name, ok := c.NameFor(asesorID)
	require.True(t, ok)
	assert.Equal(t, entity.RoleAsesor, name)

	_, ok = c.IDFor("CLIENTE")
	assert.False(t, ok)
	_, ok = c.NameFor("no-es-uuid")
	assert.False(t, ok)
}

func TestNewRoleCatalog_Incompleto(t *testing.T) {
	_, err := entity.NewRoleCatalog(map[entity.RoleName]string{entity.RoleAdmin: adminID})
	assert.Error(t, err)
}

func TestNewRoleCatalog_IDRepetido(t *testing.T) {
	_, err := entity.NewRoleCatalog(map[entity.RoleName]string{
		entity.RoleAdmin:  adminID,
		entity.RoleUser:   adminID,
		entity.RoleAsesor: asesorID,
	})
	assert.Error(t, err)
}

func TestNewRoleCatalog_IDInvalido(t *testing.T) {
	_, err := entity.NewRoleCatalog(map[entity.RoleName]string{
		entity.RoleAdmin:  "x",
		entity.RoleUser:   userID,
		entity.RoleAsesor: asesorID,
	})
	assert.Error(t, err)
}

func TestRoleCatalogFromRoles(t *testing.T) {
	c, err := entity.RoleCatalogFromRoles([]entity.Role{
		{ID: adminID, Name: "admin"},
		{ID: userID, Name: entity.RoleUser},
		{ID: asesorID, Name: entity.RoleAsesor},
	})
	require.NoError(t, err)
	id, ok := c.IDFor("ADMIN")
	require.True(t, ok)
	assert.Equal(t, adminID, id)
}
