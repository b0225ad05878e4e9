package suitekit

import (
	"fmt"
	"iter"
	"math"

	"github.com/ruffel/suitekit/spy"
)

// Unbounded is the length reported by Fresh: any number of instances may be drawn.
const Unbounded = math.MaxInt

// Fresh hands out new instances on every access and resets each one after the
// test that drew it. Nothing is memoized, not even by index.
type Fresh[V any] struct {
	lc      Lifecycle
	factory Factory[V]
	reset   Teardown[V]
}

// NewFresh creates a Fresh drawing instances from factory. reset may be nil.
func NewFresh[V any](lc Lifecycle, factory Factory[V], reset Teardown[V]) *Fresh[V] {
	return &Fresh[V]{
		lc:      lc,
		factory: factory,
		reset:   reset,
	}
}

// Spies creates a Fresh of recording spies whose history is cleared after each test.
func Spies(lc Lifecycle) *Fresh[*spy.Spy] {
	return NewFresh(lc, Func(spy.New), func(s *spy.Spy) error {
		s.Reset()

		return nil
	})
}

// New creates an instance and registers its reset.
func (f *Fresh[V]) New() V {
	v, err := f.factory()
	if err != nil {
		fail(f.lc, &FactoryError{Err: err})

		return v
	}

	if f.reset != nil {
		f.lc.AfterEach(func(t T) {
			if err := f.reset(v); err != nil {
				t.Helper()
				t.Errorf("%v", &CleanupError{Err: err})
			}
		})
	}

	return v
}

// At creates an instance for position i. Repeating an index yields a new
// instance each time.
func (f *Fresh[V]) At(i int) V {
	if i < 0 {
		panic(fmt.Errorf("suitekit: %w: %d", ErrIndex, i))
	}

	return f.New()
}

// Take creates n instances, the counterpart of destructuring a, b, c from the set.
func (f *Fresh[V]) Take(n int) []V {
	if n < 0 {
		panic(fmt.Errorf("suitekit: %w: %d", ErrIndex, n))
	}

	out := make([]V, n)
	for i := range out {
		out[i] = f.At(i)
	}

	return out
}

// Len reports Unbounded.
func (f *Fresh[V]) Len() int {
	return Unbounded
}

// All returns an endless sequence; every step creates and registers a new
// instance. Stop ranging over it to stop drawing.
func (f *Fresh[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			if !yield(f.New()) {
				return
			}
		}
	}
}
