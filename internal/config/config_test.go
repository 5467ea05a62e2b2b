package config_test

import (
	"testing"
	"time"

	"stepup-tasks/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "task", cfg.Mongo.Database)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "./web", cfg.Static.Dir)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_DB", "stepup")
	t.Setenv("TOKEN_TTL", "1h")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "stepup", cfg.Mongo.Database)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadConfig_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := config.LoadConfig()
	require.Error(t, err)

	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	_, err = config.LoadConfig()
	require.Error(t, err, "SECRET_KEY should still be missing")

	t.Setenv("SECRET_KEY", "a-real-secret")
	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_MalformedDurationFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestGetServerAddr(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "8081")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8081", cfg.GetServerAddr())
}
