package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig_CostParsing(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		wantCost   int
		wantErr    bool
	}{
		{"default cost", "", 12, false},
		{"minimum valid cost", "10", 10, false},
		{"maximum valid cost", "14", 14, false},
		{"cost below minimum", "9", 0, true},
		{"cost above maximum", "15", 0, true},
		{"negative cost", "-5", 0, true},
		{"non-numeric cost", "invalid", 0, true},
		{"float cost", "12.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.bcryptCost == "" {
				t.Setenv("BCRYPT_COST", "")
				os.Unsetenv("BCRYPT_COST")
			} else {
				t.Setenv("BCRYPT_COST", tt.bcryptCost)
			}
			t.Setenv("PASSWORD_PEPPER", "")
			os.Unsetenv("PASSWORD_PEPPER")

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("test-password-123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, cfg.VerifyPassword("test-password-123", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))
	assert.False(t, cfg.VerifyPassword("test-password-123", ""))
}

func TestPasswordConfig_HashesAreSalted(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash1, err := cfg.HashPassword("same-password")
	require.NoError(t, err)
	hash2, err := cfg.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "bcrypt salts should make repeated hashes differ")
	assert.True(t, cfg.VerifyPassword("same-password", hash1))
	assert.True(t, cfg.VerifyPassword("same-password", hash2))
}

func TestPasswordConfig_PepperChangesVerification(t *testing.T) {
	withPepper := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-one"}
	withoutPepper := &PasswordConfig{BcryptCost: 10}

	hash, err := withPepper.HashPassword("test-password")
	require.NoError(t, err)

	assert.True(t, withPepper.VerifyPassword("test-password", hash))
	assert.False(t, withoutPepper.VerifyPassword("test-password", hash),
		"hash made with pepper must not verify without it")

	otherPepper := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-two"}
	assert.False(t, otherPepper.VerifyPassword("test-password", hash))
}

func TestPasswordConfig_PasswordExceeding72Bytes(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	// bcrypt errors rather than truncating past its 72-byte limit
	hash, err := cfg.HashPassword(strings.Repeat("a", 100))
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestPasswordConfig_MalformedStoredHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	for _, malformed := range []string{"not-a-hash", "$2a$12$invalid", "invalid$format"} {
		assert.False(t, cfg.VerifyPassword("test", malformed))
	}
}
