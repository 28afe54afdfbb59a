// Package signal provides synthetic telemetry sources and the sliding windows that display them
package signal

import (
	"math"
	"math/rand/v2"
)

// Generator produces an endless stream of samples
type Generator[T any] interface {
	Next() T
}

// NewRand returns a random source seeded from seed. A zero seed picks a
// non-deterministic seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// BoundedRandom emits uniformly distributed integers in [lower, upper)
type BoundedRandom struct {
	lower uint64
	upper uint64
	rng   *rand.Rand
}

// NewBoundedRandom creates a bounded random source
func NewBoundedRandom(rng *rand.Rand, lower, upper uint64) *BoundedRandom {
	return &BoundedRandom{lower: lower, upper: upper, rng: rng}
}

// Next returns the next sample. An empty range always yields lower.
func (b *BoundedRandom) Next() uint64 {
	if b.upper <= b.lower {
		return b.lower
	}
	return b.lower + b.rng.Uint64N(b.upper-b.lower)
}

// Point is a single chart sample
type Point struct {
	X float64
	Y float64
}

// NoiseAmplitude is the half-width of the uniform noise added to a sine sample,
// relative to its scale.
const NoiseAmplitude = 0.1

// NoisySine emits points on a sine wave with uniform noise. X starts at zero
// and advances by interval on every call; the phase never resets.
type NoisySine struct {
	x        float64
	interval float64
	period   float64
	scale    float64
	rng      *rand.Rand
}

// NewNoisySine creates a sine source
func NewNoisySine(rng *rand.Rand, interval, period, scale float64) *NoisySine {
	return &NoisySine{
		interval: interval,
		period:   period,
		scale:    scale,
		rng:      rng,
	}
}

// Next returns the point at the current phase and advances it
func (s *NoisySine) Next() Point {
	noise := (s.rng.Float64()*2 - 1) * NoiseAmplitude
	p := Point{
		X: s.x,
		Y: (math.Sin(s.x/s.period) + noise) * s.scale,
	}
	s.x += s.interval
	return p
}

// Baseline returns the noise-free value at x
func (s *NoisySine) Baseline(x float64) float64 {
	return math.Sin(x/s.period) * s.scale
}

// Phase returns the x value of the next point
func (s *NoisySine) Phase() float64 {
	return s.x
}

// Scale returns the amplitude of the wave
func (s *NoisySine) Scale() float64 {
	return s.scale
}
