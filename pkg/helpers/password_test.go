package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("saymyname", "pepper", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(digest, "saymyname", "pepper"))
	assert.False(t, CheckPassword(digest, "saymyname", "other-pepper"))
	assert.False(t, CheckPassword(digest, "heisenberg", "pepper"))
}

func TestHashPasswordSaltsDigests(t *testing.T) {
	a, err := HashPassword("saymyname", "pepper", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPassword("saymyname", "pepper", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPasswordOutOfRangeCostFallsBack(t *testing.T) {
	digest, err := HashPassword("saymyname", "pepper", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
