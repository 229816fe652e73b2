package game

import (
	"crypto/rand"
	mrand "math/rand/v2"
	"strings"
)

const (
	CodeLength = 4

	minSymbol   = '1'
	alphabetLen = 8 // '1'..'8'
)

// Rand is the source of uniform integers in [0, n). *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type SecretGenerator struct {
	rnd Rand
}

func NewSecretGenerator(rnd Rand) *SecretGenerator {
	if rnd == nil {
		rnd = NewRand()
	}
	return &SecretGenerator{rnd: rnd}
}

// NewRand returns a ChaCha8 generator seeded from crypto/rand.
func NewRand() *mrand.Rand {
	var seed [32]byte
	// crypto/rand.Read never returns an error since Go 1.24
	_, _ = rand.Read(seed[:])
	return mrand.New(mrand.NewChaCha8(seed))
}

// Generate draws symbols until it holds CodeLength distinct ones.
// Repeats are discarded and redrawn.
func (g *SecretGenerator) Generate() string {
	var b strings.Builder
	b.Grow(CodeLength)
	for b.Len() < CodeLength {
		d := byte(minSymbol + g.rnd.IntN(alphabetLen))
		if strings.IndexByte(b.String(), d) >= 0 {
			continue
		}
		b.WriteByte(d)
	}
	return b.String()
}
