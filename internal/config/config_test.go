package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("error writing config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.internal"
user = "hublumi"
password = "secret"
dbname = "hublumi_booking"

[logs]
file = "/var/log/hublumi/booking.log"
level = "debug"

[metrics]
enabled = true

[availability]
completed_blocks = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Availability.CompletedBlocks)

	// Defaults preservados para chaves ausentes
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "hublumi"
dbname = "hublumi_booking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	// Sem configuração, reservas concluídas seguem bloqueando inventário
	assert.True(t, cfg.Availability.CompletedBlocks)
}

func TestLoad_MissingDatabaseName(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "hublumi"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "dbname")
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 99999

[database]
user = "hublumi"
dbname = "hublumi_booking"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "http_port")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "hublumi",
		Password: "secret",
		DBName:   "hublumi_booking",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=hublumi password=secret dbname=hublumi_booking sslmode=disable",
		d.DSN())
}
