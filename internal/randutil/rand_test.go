package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsReproducible(t *testing.T) {
	a, b := New(42), New(42)
	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewDiffersBySeed(t *testing.T) {
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestNewCryptoDraws(t *testing.T) {
	r := NewCrypto()
	for range 100 {
		n := r.IntN(52)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 52)
	}
}
