package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/dmezav/empleados-ms/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("POSTGRES_HOST", "")
	t.Setenv("PARTE1_MS_URL", "")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "8000", cfg.HTTP.Port)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "mydb", cfg.Postgres.Dbname)
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.Remote.SyncInterval)
}

func TestMustLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ENV", "production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("POSTGRES_HOST", "testHost")
	t.Setenv("POSTGRES_PORT", "12345")
	t.Setenv("POSTGRES_USER", "admin")
	t.Setenv("POSTGRES_PASSWORD", "adminpass")
	t.Setenv("POSTGRES_DB", "testName")
	t.Setenv("PARTE1_MS_URL", "http://custom-host:9000")
	t.Setenv("SYNC_INTERVAL", "10m")

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, "testHost", cfg.Postgres.Host)
	assert.Equal(t, "12345", cfg.Postgres.Port)
	assert.Equal(t, "admin", cfg.Postgres.User)
	assert.Equal(t, "adminpass", cfg.Postgres.Password)
	assert.Equal(t, "testName", cfg.Postgres.Dbname)
	assert.Equal(t, "http://custom-host:9000", cfg.Remote.BaseURL)
	assert.Equal(t, 10*time.Minute, cfg.Remote.SyncInterval)
}

func TestMustLoad_FromFile(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte(`env: development
http:
  port: "8080"
postgres:
  host: db.internal
  db_name: empleados
remote:
  url: http://parte1-ms-service.otra.svc.cluster.local:8000
  sync_interval: 1h
`)
	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("PARTE1_MS_URL", "")

	cfg := config.MustLoad()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "empleados", cfg.Postgres.Dbname)
	assert.Equal(t, "http://parte1-ms-service.otra.svc.cluster.local:8000", cfg.Remote.BaseURL)
	assert.Equal(t, time.Hour, cfg.Remote.SyncInterval)
}

func TestMustLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	assert.PanicsWithValue(t, "config file does not exist: /nonexistent/config.yaml", func() {
		config.MustLoad()
	})
}
