package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithSecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "user_token", cfg.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.LatestProductsLimit)
	assert.Empty(t, cfg.S3.Bucket)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.Equal(t, "activity_log", cfg.RabbitMQ.Queue)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("S3_BUCKET", "portal-media")
	t.Setenv("S3_ACCESS_KEY", "key")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("LATEST_PRODUCTS_LIMIT", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "portal-media", cfg.S3.Bucket)
	assert.Equal(t, 4, cfg.LatestProductsLimit)
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]interface{}
		wantErr string
	}{
		{"missing secret", map[string]interface{}{}, "JWT_SECRET"},
		{"unknown driver", map[string]interface{}{"JWT_SECRET": "x", "DATABASE_DRIVER": "mysql"}, "DATABASE_DRIVER"},
		{"bucket without credentials", map[string]interface{}{"JWT_SECRET": "x", "S3_BUCKET": "b"}, "S3_ACCESS_KEY"},
		{"zero latest limit", map[string]interface{}{"JWT_SECRET": "x", "LATEST_PRODUCTS_LIMIT": 0}, "LATEST_PRODUCTS_LIMIT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := fromViper(v)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
