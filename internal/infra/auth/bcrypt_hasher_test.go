package auth

import (
	"testing"

	"tracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4} // min cost keeps the test fast

	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.NoError(t, hasher.Compare(hash, "secret-password"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
}
