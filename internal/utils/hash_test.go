package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordProducesEncodedArgon2id(t *testing.T) {
	hash, err := HashPassword("SecurePass123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.Len(t, strings.Split(hash, "$"), 6)
	assert.NotContains(t, hash, "SecurePass123")
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("SecurePass123")
	require.NoError(t, err)
	second, err := HashPassword("SecurePass123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("SecurePass123")
	require.NoError(t, err)

	valid, err := VerifyPassword("SecurePass123", hash)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyPassword("WrongPass123", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plaintext", "admin123"},
		{"truncated", "$argon2id$v=19$m=65536,t=1,p=4$onlyonepart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := VerifyPassword("whatever", tt.hash)
			assert.False(t, valid)
			assert.Error(t, err)
		})
	}
}

func TestVerifyPasswordIncompatibleVersion(t *testing.T) {
	hash, err := HashPassword("SecurePass123")
	require.NoError(t, err)

	tampered := strings.Replace(hash, "v=19", "v=18", 1)
	valid, err := VerifyPassword("SecurePass123", tampered)
	assert.False(t, valid)
	assert.ErrorIs(t, err, ErrIncompatibleVersion)
}
