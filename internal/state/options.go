package state

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ntnucsie/launchdeck/internal/signal"
)

// Periods sets how often, in progress steps, each periodic effect fires.
// All three are gated on the same wrapping progress counter.
type Periods struct {
	LogRotate    int
	PacketRotate int
	PowerWalk    int
}

// DefaultPeriods returns the stock cadence
func DefaultPeriods() Periods {
	return Periods{
		LogRotate:    5,
		PacketRotate: 3,
		PowerWalk:    10,
	}
}

// RandomSpec configures the bounded random signal-strength buffer
type RandomSpec struct {
	Lower    uint64
	Upper    uint64
	Capacity int
	Rate     int
}

// WaveSpec configures a noisy sine buffer
type WaveSpec struct {
	Interval float64
	Period   float64
	Scale    float64
	Capacity int
	Rate     int
}

// Options holds the simulation tunables
type Options struct {
	Rand           *rand.Rand
	Periods        Periods
	SignalStrength RandomSpec
	WaveA          WaveSpec
	WaveB          WaveSpec
	TimeAxis       [2]float64
	InitialPower   float64
}

// Option mutates Options
type Option func(*Options)

// DefaultOptions returns the stock simulation
func DefaultOptions() Options {
	return Options{
		Periods:        DefaultPeriods(),
		SignalStrength: RandomSpec{Lower: 0, Upper: 100, Capacity: 300, Rate: 1},
		WaveA:          WaveSpec{Interval: 0.2, Period: 3.0, Scale: 16.0, Capacity: 100, Rate: 5},
		WaveB:          WaveSpec{Interval: 0.1, Period: 2.0, Scale: 8.0, Capacity: 200, Rate: 10},
		TimeAxis:       [2]float64{0, 20},
		InitialPower:   50,
	}
}

// WithRand injects the random source used by every generator and the power walk
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed seeds a fresh random source. Zero means non-deterministic.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Rand = signal.NewRand(seed)
	}
}

// WithPeriods overrides the periodic effect cadence
func WithPeriods(p Periods) Option {
	return func(o *Options) {
		o.Periods = p
	}
}

// WithSignalStrength overrides the signal-strength buffer
func WithSignalStrength(s RandomSpec) Option {
	return func(o *Options) {
		o.SignalStrength = s
	}
}

// WithWaveA overrides the first wave buffer
func WithWaveA(w WaveSpec) Option {
	return func(o *Options) {
		o.WaveA = w
	}
}

// WithWaveB overrides the second wave buffer
func WithWaveB(w WaveSpec) Option {
	return func(o *Options) {
		o.WaveB = w
	}
}

// ErrInvalidPeriod is returned when a periodic effect has a non-positive period
var ErrInvalidPeriod = errors.New("period must be positive")

// ErrInvalidWave is returned for a wave with a zero period
var ErrInvalidWave = errors.New("wave period must be non-zero")

func (p Periods) validate() error {
	if p.LogRotate <= 0 {
		return fmt.Errorf("log rotate %d: %w", p.LogRotate, ErrInvalidPeriod)
	}
	if p.PacketRotate <= 0 {
		return fmt.Errorf("packet rotate %d: %w", p.PacketRotate, ErrInvalidPeriod)
	}
	if p.PowerWalk <= 0 {
		return fmt.Errorf("power walk %d: %w", p.PowerWalk, ErrInvalidPeriod)
	}
	return nil
}

func newWave(rng *rand.Rand, spec WaveSpec) (*signal.Window[signal.Point], error) {
	if spec.Period == 0 {
		return nil, ErrInvalidWave
	}
	src := signal.NewNoisySine(rng, spec.Interval, spec.Period, spec.Scale)
	return signal.NewWindow[signal.Point](src, spec.Capacity, spec.Rate)
}
