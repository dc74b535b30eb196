package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-ats/internal/models"
)

const rolesJSON = `{
  "java_developer": {
    "title": "Java Developer",
    "description": "Build Java services",
    "skills": ["Java", "Spring Boot", "SQL", "AWS"]
  },
  "data_analyst": {
    "title": "Data Analyst",
    "description": "Analyze data",
    "skills": []
  }
}`

func writeRolesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRoleCatalogFromFile(t *testing.T) {
	catalog, err := LoadRoleCatalogFromFile(writeRolesFile(t, rolesJSON))
	require.NoError(t, err)

	role, ok := catalog.Get("java_developer")
	require.True(t, ok)
	assert.Equal(t, "Java Developer", role.Title)
	assert.Equal(t, []string{"Java", "Spring Boot", "SQL", "AWS"}, role.Skills)

	roles := catalog.List()
	require.Len(t, roles, 2)
	assert.Equal(t, "data_analyst", roles[0].Key)
	assert.Equal(t, "java_developer", roles[1].Key)
}

func TestRoleCatalog_IsImmutable(t *testing.T) {
	catalog, err := LoadRoleCatalogFromFile(writeRolesFile(t, rolesJSON))
	require.NoError(t, err)

	role, _ := catalog.Get("java_developer")
	role.Skills[0] = "COBOL"
	role.Title = "changed"

	again, _ := catalog.Get("java_developer")
	assert.Equal(t, "Java", again.Skills[0])
	assert.Equal(t, "Java Developer", again.Title)
}

func TestLoadRoleCatalogFromFile_Errors(t *testing.T) {
	_, err := LoadRoleCatalogFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read roles file")

	_, err = LoadRoleCatalogFromFile(writeRolesFile(t, "{not json"))
	assert.ErrorContains(t, err, "failed to parse roles file")

	_, err = LoadRoleCatalogFromFile(writeRolesFile(t, `{"x": {"title": "", "description": "d", "skills": []}}`))
	assert.ErrorContains(t, err, `invalid role "x"`)

	_, err = LoadRoleCatalogFromFile(writeRolesFile(t, `{"x": {"title": "X", "description": "d", "skills": ["Go", ""]}}`))
	assert.ErrorContains(t, err, `invalid role "x"`)
}

func TestNewRoleCatalog_RejectsBadKeys(t *testing.T) {
	_, err := NewRoleCatalog([]models.Role{{Title: "No key", Description: "d"}})
	assert.ErrorContains(t, err, "empty key")

	_, err = NewRoleCatalog([]models.Role{
		{Key: "a", Title: "A", Description: "d"},
		{Key: "a", Title: "A again", Description: "d"},
	})
	assert.ErrorContains(t, err, "duplicate role key")
}

type stubRoleSource struct {
	roles []models.Role
	err   error
}

func (s *stubRoleSource) FindAll() ([]models.Role, error) {
	return s.roles, s.err
}

func TestLoadRoleCatalogFromSource(t *testing.T) {
	catalog, err := LoadRoleCatalogFromSource(&stubRoleSource{roles: []models.Role{
		{Key: "go_backend_engineer", Title: "Go Backend Engineer", Description: "Go services", Skills: []string{"Go"}},
	}})
	require.NoError(t, err)

	_, ok := catalog.Get("go_backend_engineer")
	assert.True(t, ok)

	_, err = LoadRoleCatalogFromSource(&stubRoleSource{err: errors.New("connection refused")})
	assert.ErrorContains(t, err, "connection refused")
}

func TestResolveRole(t *testing.T) {
	catalog, err := LoadRoleCatalogFromFile(writeRolesFile(t, rolesJSON))
	require.NoError(t, err)

	role, err := ResolveRole(catalog, "java_developer", "")
	require.NoError(t, err)
	assert.Equal(t, "Java Developer", role.Title)

	// The key wins over a description.
	role, err = ResolveRole(catalog, "java_developer", "Rust engineer")
	require.NoError(t, err)
	assert.Equal(t, "java_developer", role.Key)

	_, err = ResolveRole(catalog, "astronaut", "Rust engineer")
	assert.ErrorIs(t, err, ErrUnknownRole)

	role, err = ResolveRole(catalog, "", "  Rust engineer building CLIs ")
	require.NoError(t, err)
	assert.Equal(t, models.CustomRoleTitle, role.Title)
	assert.Equal(t, "Rust engineer building CLIs", role.Description)
	assert.Empty(t, role.Skills)
	assert.True(t, role.IsCustom())

	_, err = ResolveRole(catalog, " ", "")
	assert.ErrorIs(t, err, ErrRoleRequired)
}
