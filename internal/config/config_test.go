package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "fitness")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "fitness_app")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ACCESS_TOKEN_TTL_MIN", "15")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("REGISTRATION_CODE", "invite-2024")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fitness_app", cfg.DBName)
	assert.Equal(t, 15, cfg.AccessTTLMin)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "invite-2024", cfg.RegistrationCode)
	// optional lookup settings fall back to defaults
	assert.Equal(t, "https://world.openfoodfacts.org", cfg.LookupBaseURL)
	assert.Equal(t, 3000, cfg.LookupTimeoutMS)
}

func TestLoadLookupOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOOKUP_BASE_URL", "http://localhost:9999")
	t.Setenv("LOOKUP_TIMEOUT_MS", "500")

	cfg := Load()
	assert.Equal(t, "http://localhost:9999", cfg.LookupBaseURL)
	assert.Equal(t, 500, cfg.LookupTimeoutMS)
}

func TestAtoiDefault(t *testing.T) {
	assert.Equal(t, 7, atoiDefault("", 7))
	assert.Equal(t, 7, atoiDefault("abc", 7))
	assert.Equal(t, 42, atoiDefault("42", 7))
}
