package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("segredo123")
	assert.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)
	assert.NotContains(t, hash, "segredo123")
}

func TestCheckPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("segredo123")
	assert.NoError(t, err)

	assert.True(t, CheckPasswordHash("segredo123", hash))
	assert.False(t, CheckPasswordHash("outra-senha", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("segredo123")
	assert.NoError(t, err)
	h2, err := HashPassword("segredo123")
	assert.NoError(t, err)

	// Mesmo plaintext, hashes distintos por causa do salt.
	assert.NotEqual(t, h1, h2)
}
