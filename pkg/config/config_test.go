package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablesprint/catalog-api/pkg/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_USER", "catalog")
	t.Setenv("DB_PASSWORD", "p@ss:word")
	t.Setenv("DB_NAME", "tablesprint")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_ConVariablesObligatorias(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.local", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, config.StorageLocal, cfg.Storage.Driver)
	assert.Equal(t, "uploads", cfg.Storage.UploadDir)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestLoad_FaltaSecretYHost_FallaRapido(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()
	require.Error(t, err)
	assert.Nil(t, cfg)

	var missing *config.MissingKeysError
	require.True(t, errors.As(err, &missing))
	assert.ElementsMatch(t, []string{"DB_HOST", "JWT_SECRET"}, missing.Keys)
}

func TestLoad_DatabaseURLReemplazaDBVars(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@h:5432/db")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h:5432/db", cfg.DB.ConnectionString())
}

func TestLoad_S3SinBucket(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "S3")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

func TestLoad_DriverDesconocido(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "ftp")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_ValorNoNumerico_FallaRapido(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", "abc")
	t.Setenv("DB_AUTO_MIGRATE", "quizás")

	cfg, err := config.Load()
	require.Error(t, err)
	assert.Nil(t, cfg)

	var invalid *config.InvalidValuesError
	require.True(t, errors.As(err, &invalid))
	assert.ElementsMatch(t, []string{"HTTP_PORT", "DB_AUTO_MIGRATE"}, invalid.Keys)
}

func TestLoad_ValoresNumericosValidos(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_PORT", " 8080 ")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss:word", DBName: "db", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aword@h:5432/db?sslmode=disable", c.DSN())
}
