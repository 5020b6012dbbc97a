package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("03052015")
	require.NoError(t, err)

	assert.NotEqual(t, "03052015", hash)
	assert.True(t, CheckPassword(hash, "03052015"))
	assert.False(t, CheckPassword(hash, "03052016"))
	assert.False(t, CheckPassword("not-a-hash", "03052015"))

	again, err := HashPassword("03052015")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again) // salted
}
