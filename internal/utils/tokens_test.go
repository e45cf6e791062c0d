package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	token, err := NewResetToken(32)
	require.NoError(t, err)
	// 32 bytes base64url without padding
	assert.Len(t, token, 43)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
}

func TestNewResetTokenDefaultsSize(t *testing.T) {
	token, err := NewResetToken(0)
	require.NoError(t, err)
	assert.Len(t, token, 43)
}

func TestNewResetTokenUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := NewResetToken(32)
		require.NoError(t, err)
		require.False(t, seen[token], "duplicate token generated")
		seen[token] = true
	}
}
