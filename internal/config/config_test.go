package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "myuser")
	t.Setenv("DB_NAME", "amozeshgah")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "MyPass123!")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxIdle)
	assert.Equal(t, 15*time.Minute, cfg.S3PresignTTL)
	assert.False(t, cfg.PubSubEnabled())
	assert.False(t, cfg.ImageSigningEnabled())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "MyPass123!")
	require.NoError(t, os.Unsetenv("DB_HOST"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestLoadPasswordFromSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_PASSWORD_SECRET", "projects/p/secrets/db/versions/latest")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.DBPassword)
	assert.Equal(t, "projects/p/secrets/db/versions/latest", cfg.DBPasswordSecret)
}

func TestValidate(t *testing.T) {
	cfg := &Config{DBSSLMode: "require"}
	assert.ErrorIs(t, cfg.Validate(), ErrDBPasswordMissing)

	cfg.DBPassword = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.DBSSLMode = "sometimes"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidSSLMode)
}

func TestFeatureToggles(t *testing.T) {
	cfg := &Config{GCPProjectID: "proj"}
	assert.False(t, cfg.PubSubEnabled())

	cfg.PubSubPurchaseTopic = "purchases"
	assert.True(t, cfg.PubSubEnabled())

	cfg.S3Bucket = "course-images"
	assert.True(t, cfg.ImageSigningEnabled())
}
