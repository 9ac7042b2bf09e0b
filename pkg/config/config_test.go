package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agencia-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSizeBytes())
}

func TestLoad_SecretObligatorioFueraDeDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_ProduccionConSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "secreto-de-produccion")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "secreto-de-produccion", cfg.JWT.Secret)
	assert.False(t, cfg.App.IsDevelopment())
}

func TestValidate_RangosInvalidos(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{
			App:    config.AppConfig{Env: "development"},
			JWT:    config.JWTConfig{Expiration: 60},
			HTTP:   config.HTTPConfig{Port: 8080},
			Upload: config.UploadConfig{MaxSizeMB: 10},
		}
	}

	cfg := base()
	cfg.HTTP.Port = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.JWT.Expiration = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Upload.MaxSizeMB = 0
	assert.Error(t, cfg.Validate())
}
