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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "carpenter"
password = "secret"
dbname = "carpenter_booking"
max_open_conns = 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "carpenter_booking", cfg.Database.DBName)

	// Незаданные поля берутся из значений по умолчанию
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no user", `
[database]
dbname = "carpenter_booking"
`},
		{"no dbname", `
[database]
user = "carpenter"
`},
		{"bad port", `
[server]
http_port = -1

[database]
user = "carpenter"
dbname = "carpenter_booking"
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("no_such_file.toml")
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "carpenter",
		Password: "secret",
		DBName:   "carpenter_booking",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=carpenter password=secret dbname=carpenter_booking sslmode=disable",
		cfg.DSN())
}
