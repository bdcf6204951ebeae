package core

// Source produces uniformly distributed floats in [0, 1).
// *math/rand.Rand satisfies it; tests substitute fixed sequences.
type Source interface {
	Float64() float64
}

// RandRange samples uniformly from [lo, hi).
func RandRange(src Source, lo, hi float64) float64 {
	return src.Float64()*(hi-lo) + lo
}

// RandIntn samples an integer uniformly from [0, n). Returns 0 when n <= 0.
func RandIntn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	// Guard against sources that return exactly 1.0.
	if i >= n {
		i = n - 1
	}
	return i
}

// Chance runs a Bernoulli trial that succeeds with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// FixedSource replays a fixed sequence of values, cycling when exhausted.
// An empty FixedSource always returns 0.
type FixedSource struct {
	Values []float64
	pos    int
}

// Float64 returns the next value of the sequence.
func (s *FixedSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}
