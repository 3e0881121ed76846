package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("11amcoke")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "11amcoke", hash)
	assert.True(t, hasher.Verify("11amcoke", hash))
	assert.False(t, hasher.Verify("incorrect", hash))
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("$admintime$")
	require.NoError(t, err)
	second, err := hasher.Hash("$admintime$")
	require.NoError(t, err)

	// bcrypt salts every hash, so equal inputs yield distinct hashes
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("$admintime$", first))
	assert.True(t, hasher.Verify("$admintime$", second))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)

	hash, err := hasher.Hash("1234567890")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
