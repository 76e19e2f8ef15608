package crypto

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// Source draws uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

// MathSource draws from math/rand/v2. It is fast and not suitable where
// predictability matters.
type MathSource struct{}

// IntN returns a uniform random int in [0, n).
func (MathSource) IntN(n int) int {
	return mrand.IntN(n)
}

// SecureSource draws from crypto/rand.
type SecureSource struct{}

// IntN returns a uniform random int in [0, n) using crypto/rand.
// It panics if the system randomness source fails.
func (SecureSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("crypto: reading system randomness: " + err.Error())
	}
	return int(v.Int64())
}

// NewSource returns the source registered under name: "crypto" selects
// SecureSource, anything else MathSource.
func NewSource(name string) Source {
	if name == "crypto" {
		return SecureSource{}
	}
	return MathSource{}
}
