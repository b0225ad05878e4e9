package suitekit

import "io"

// LazyOption defines a functional option for a Lazy.
type LazyOption[V any] func(*Lazy[V])

// WithCleanup runs fn on the memoized instance after each test that created one.
func WithCleanup[V any](fn func(V) error) LazyOption[V] {
	return func(l *Lazy[V]) {
		l.cleanup = fn
	}
}

// WithClose closes the memoized instance after each test that created one.
func WithClose[V io.Closer]() LazyOption[V] {
	return WithCleanup(func(v V) error {
		return v.Close()
	})
}
