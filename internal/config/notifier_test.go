package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNotifierConfig_Defaults(t *testing.T) {
	t.Setenv("NOTIFIER_SERVER_URL", "")
	t.Setenv("NOTIFIER_API_KEY", "")

	cfg, rest, err := GetNotifierConfig([]string{"feed low"})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, defaultNotifierTimeout, cfg.RequestTimeout)
	assert.Equal(t, []string{"feed low"}, rest)
}

func TestGetNotifierConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("NOTIFIER_SERVER_URL", "http://farm.local:8080")
	t.Setenv("NOTIFIER_API_KEY", "env-key")
	t.Setenv("NOTIFIER_REQUEST_TIMEOUT", "3s")

	cfg, rest, err := GetNotifierConfig([]string{"-k", "flag-key", "door open", "water low"})

	require.NoError(t, err)
	assert.Equal(t, "http://farm.local:8080", cfg.ServerURL)
	assert.Equal(t, "flag-key", cfg.APIKey)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"door open", "water low"}, rest)
}

func TestGetNotifierConfig_BadFlag(t *testing.T) {
	_, _, err := GetNotifierConfig([]string{"-t", "soon"})

	assert.Error(t, err)
}

func TestGetNotifierConfig_Probe(t *testing.T) {
	cfg, rest, err := GetNotifierConfig([]string{"-health", "-s", "farm.local:8080"})

	require.NoError(t, err)
	assert.True(t, cfg.Probe)
	assert.Equal(t, "farm.local:8080", cfg.ServerURL)
	assert.Empty(t, rest)
}
