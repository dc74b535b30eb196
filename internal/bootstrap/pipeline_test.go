package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/config"
)

func TestLoadCatalog_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"qa": {"title": "QA Engineer", "description": "Test things", "skills": ["Selenium"]}
	}`), 0o644))

	cfg := &config.Config{Roles: config.RolesConfig{Source: config.RolesSourceFile, Path: path}}

	catalog, err := LoadCatalog(cfg, zap.NewNop())
	require.NoError(t, err)

	role, ok := catalog.Get("qa")
	require.True(t, ok)
	assert.Equal(t, "QA Engineer", role.Title)
	assert.Equal(t, []string{"Selenium"}, role.Skills)
}

func TestLoadCatalog_Errors(t *testing.T) {
	_, err := LoadCatalog(&config.Config{
		Roles: config.RolesConfig{Source: config.RolesSourceFile, Path: filepath.Join(t.TempDir(), "missing.json")},
	}, zap.NewNop())
	assert.Error(t, err)

	_, err = LoadCatalog(&config.Config{Roles: config.RolesConfig{Source: "redis"}}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown roles source "redis"`)
}

func TestOpenRoleVectors_Disabled(t *testing.T) {
	store, err := OpenRoleVectors(context.Background(), &config.Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestNewPipeline_MissingGeminiKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"qa": {"title": "QA", "description": "Test", "skills": []}}`), 0o644))

	cfg := &config.Config{Roles: config.RolesConfig{Source: config.RolesSourceFile, Path: path}}

	_, err := NewPipeline(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize Gemini")
}
