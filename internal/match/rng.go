package match

import "math/rand/v2"

// RandomSource is the injectable randomness behind probabilistic chaos
// triggers. Replays inject the same seed and get identical rolls;
// ambient system randomness is never consulted.
type RandomSource interface {
	Float64() float64 // [0, 1)
}

type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a deterministic PCG-backed source.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
