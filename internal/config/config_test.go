package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requiredViper() *viper.Viper {
	v := NewViper()
	v.Set("APP_NAME", "prison-jobs")
	v.Set("APP_ENV", "test")
	v.Set("HTTP_PORT", "8080")
	v.Set("JWT_ACCESS_SECRET", "access")
	v.Set("JWT_REFRESH_SECRET", "refresh")
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(requiredViper())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, []string{"*"}, cfg.App.CORSAllowOrigins)
	assert.Equal(t, "localhost", cfg.Database.DBHost)
	assert.Equal(t, int32(10), cfg.Database.PoolMaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.False(t, cfg.IsProduction())
}

func TestFromViper_MissingRequired(t *testing.T) {
	v := NewViper()
	v.Set("APP_NAME", "prison-jobs")

	_, err := FromViper(v)
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_ENV")
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
	assert.NotContains(t, err.Error(), "APP_NAME")
}

func TestFromViper_Overrides(t *testing.T) {
	v := requiredViper()
	v.Set("REDIS_TTL", "30")
	v.Set("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")
	v.Set("JWT_ACCESS_EXPIRES_IN", "1h")
	v.Set("APP_ENV", "Production")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORSAllowOrigins)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiresIn)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_NAME", "prison-jobs")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", ":9000")
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.App.HTTPPort)
	assert.Equal(t, int64(1024), cfg.Upload.MaxBytes)
}
