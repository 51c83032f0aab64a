package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsAndEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("INSTITUTION_CODE", "TST")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "TST", cfg.Institution.Code)
	// Untouched values keep their defaults
	assert.Equal(t, "syklicollege.fi", cfg.Institution.EmailDomain)
	assert.Equal(t, 3, cfg.Institution.ProgramLengthYears)
	assert.Equal(t, "@every 15m", cfg.Jobs.ReconciliationSchedule)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadEmailDomain(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("INSTITUTION_EMAIL_DOMAIN", "admin@syklicollege.fi")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
