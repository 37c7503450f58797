// Package rng provides the seeded linear congruential generator every
// generation stage draws from.
package rng

import "math"

const multiplier = 16807

// Random is a Park-Miller linear congruential generator.
// The same seed and the same call order always yield the same sequence.
type Random struct {
	seed  int64
	state int64
}

// New creates a generator seeded from s. An absent seed is resolved from
// ambient entropy.
func New(s Seed) *Random {
	v := s.Resolve().Value()
	return &Random{seed: v, state: v}
}

// NewFromValue creates a generator with an explicit initial state.
func NewFromValue(v int64) *Random {
	v = normalize(v)
	return &Random{seed: v, state: v}
}

// Seed returns the initial state.
func (r *Random) Seed() int64 { return r.seed }

// Reset restores the initial state.
func (r *Random) Reset() { r.state = r.seed }

// Next returns the next value in [0, 1).
func (r *Random) Next() float64 {
	r.state = (multiplier * r.state) % Modulus
	return float64(r.state) / Modulus
}

// NextInt returns an integer in [min, max], both inclusive.
func (r *Random) NextInt(min, max int) int {
	return int(math.Floor(r.Next()*float64(max-min+1))) + min
}

// NextFloat returns a float in [min, max).
func (r *Random) NextFloat(min, max float64) float64 {
	return r.Next()*(max-min) + min
}

// NextBool returns true with probability p.
func (r *Random) NextBool(p float64) bool {
	return r.Next() < p
}

// Pick returns a uniformly chosen element of items. One value is consumed
// even when items is empty, in which case the zero value is returned.
func Pick[T any](r *Random, items []T) T {
	i := r.NextInt(0, len(items)-1)
	if i < 0 || i >= len(items) {
		var zero T
		return zero
	}
	return items[i]
}

