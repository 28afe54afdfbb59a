package signal

import "errors"

// Window construction errors
var (
	ErrInvalidCapacity     = errors.New("window capacity must be at least 1")
	ErrInvalidRate         = errors.New("window rate must not be negative")
	ErrRateExceedsCapacity = errors.New("window rate exceeds capacity")
)

// Window is a fixed-length FIFO view over a generator's output.
// Each Tick evicts the oldest rate samples and appends rate new ones.
type Window[T any] struct {
	source Generator[T]
	points []T
	rate   int
}

// NewWindow creates a window and fills it with capacity samples from src
func NewWindow[T any](src Generator[T], capacity, rate int) (*Window[T], error) {
	switch {
	case capacity < 1:
		return nil, ErrInvalidCapacity
	case rate < 0:
		return nil, ErrInvalidRate
	case rate > capacity:
		return nil, ErrRateExceedsCapacity
	}

	points := make([]T, capacity)
	for i := range points {
		points[i] = src.Next()
	}
	return &Window[T]{
		source: src,
		points: points,
		rate:   rate,
	}, nil
}

// Tick advances the window by its rate
func (w *Window[T]) Tick() {
	n := len(w.points)
	if w.rate <= 0 || w.rate > n {
		return
	}
	copy(w.points, w.points[w.rate:])
	for i := n - w.rate; i < n; i++ {
		w.points[i] = w.source.Next()
	}
}

// Points returns the window contents, oldest first. Callers must not modify the slice.
func (w *Window[T]) Points() []T {
	return w.points
}

// Len returns the window capacity
func (w *Window[T]) Len() int {
	return len(w.points)
}

// Rate returns how many samples each tick replaces
func (w *Window[T]) Rate() int {
	return w.rate
}

// Latest returns the newest sample
func (w *Window[T]) Latest() (T, bool) {
	var zero T
	if len(w.points) == 0 {
		return zero, false
	}
	return w.points[len(w.points)-1], true
}
