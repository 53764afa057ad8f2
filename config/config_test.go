package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "DB_HOST", "DB_PORT", "DB_PASSWORD", "DB_SSLMODE", "SUBSCRIPTION_SWEEP"} {
		t.Setenv(key, "")
	}
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_USER", "gym")
	t.Setenv("DB_NAME", "gymmaster")
	t.Setenv("JWT_TTL", "1h")

	cfg, err := Load(zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, "0 3 * * *", cfg.SubscriptionSweep)
	assert.Equal(t, "host=localhost user=gym password= dbname=gymmaster port=5432 sslmode=disable", cfg.DB.DSN())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_USER", "gym")
	t.Setenv("DB_NAME", "gymmaster")

	_, err := Load(zap.NewNop())
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_BadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_USER", "gym")
	t.Setenv("DB_NAME", "gymmaster")
	t.Setenv("JWT_TTL", "soon")

	_, err := Load(zap.NewNop())
	assert.Error(t, err)
}
