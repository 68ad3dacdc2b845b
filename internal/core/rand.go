package core

// RandSource is the single source of randomness a simulation draws from.
// *math/rand.Rand satisfies it; tests substitute fixed sequences so that a
// replayed input sequence yields identical state.
type RandSource interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// FixedRand is a RandSource that cycles through a fixed list of values.
// An empty list always yields 0.
type FixedRand struct {
	Values []float64
	next   int
}

// Float64 returns the next value in the cycle.
func (f *FixedRand) Float64() float64 {
	if len(f.Values) == 0 {
		return 0
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}
