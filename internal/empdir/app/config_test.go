package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("EMPDIR_JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, "empdir", cfg.Issuer)
	require.Equal(t, "empdir.db", cfg.DatabaseFile)
	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("EMPDIR_JWT_SECRET", "")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "EMPDIR_JWT_SECRET")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("EMPDIR_JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8081")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, "text", cfg.LogFormat)
}
