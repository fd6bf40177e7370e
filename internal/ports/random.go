package ports

import (
	"math/rand/v2"

	"github.com/bnema/moodline/internal/domain"
)

type RandomSource = domain.RandomSource

// NewRandom returns an unseeded source for production use.
func NewRandom() RandomSource {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRandom returns a reproducible source.
func NewSeededRandom(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed))
}
