package config_test

import (
	"testing"

	"github.com/campusconnect/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, 168, cfg.JWTExpirationHours)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 6, cfg.MaxPhotosPerUser)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxPhotoSizeBytes)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_EXPIRATION_HOURS", "24")
	t.Setenv("MAX_PHOTOS_PER_USER", "3")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.Equal(t, 3, cfg.MaxPhotosPerUser)
}
