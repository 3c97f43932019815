package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gTurboflex/supermarket-console/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Load(nil)
	require.Equal(t, "8081", cfg.Port)
	require.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	require.Equal(t, "console-session.db", cfg.SessionDB)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CATALOG_API_URL", "http://catalogue.internal:8080")

	cfg := config.Load(nil)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "http://catalogue.internal:8080", cfg.APIBaseURL)
}

func TestFlagsWinOverEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg := config.Load([]string{"--port", "9001", "--api", "http://other:8080"})
	require.Equal(t, "9001", cfg.Port)
	require.Equal(t, "http://other:8080", cfg.APIBaseURL)
}
