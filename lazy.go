package suitekit

import "sync"

// Lazy memoizes one instance per test. The factory runs on first access in a
// test; the instance is dropped after the test and released with the cleanup
// option, if any.
type Lazy[V any] struct {
	lc      Lifecycle
	factory Factory[V]
	cleanup Teardown[V]

	mu       sync.Mutex
	instance V
	created  bool
	creating bool
}

// NewLazy creates a Lazy and registers its after-each release hook with lc.
func NewLazy[V any](lc Lifecycle, factory Factory[V], opts ...LazyOption[V]) *Lazy[V] {
	l := &Lazy[V]{
		lc:      lc,
		factory: factory,
	}

	for _, o := range opts {
		o(l)
	}

	lc.AfterEach(l.release)

	return l
}

// Get returns the memoized instance, creating it if this is the first access in
// the current test. A factory failure fails the running test.
func (l *Lazy[V]) Get() V {
	v, err := l.Load()
	if err != nil {
		fail(l.lc, err)
	}

	return v
}

// Load is Get with the factory failure returned as a *FactoryError. The factory
// runs without the lock held; if it reaches back into l, that access fails with
// ErrReentrant instead of deadlocking.
func (l *Lazy[V]) Load() (V, error) {
	var zero V

	l.mu.Lock()

	if l.created {
		defer l.mu.Unlock()

		return l.instance, nil
	}

	if l.creating {
		l.mu.Unlock()

		return zero, &FactoryError{Err: ErrReentrant}
	}

	l.creating = true
	l.mu.Unlock()

	v, err := l.factory()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.creating = false

	if err != nil {
		return zero, &FactoryError{Err: err}
	}

	l.instance = v
	l.created = true

	return v, nil
}

// Created reports whether an instance is memoized for the current test.
func (l *Lazy[V]) Created() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.created
}

// Delegate returns an invocable forwarding to the method (or func field) called
// name on the instance. Nothing is resolved until the invocable is called.
func (l *Lazy[V]) Delegate(name string) Method {
	return func(args ...any) ([]any, error) {
		v, err := l.Load()
		if err != nil {
			return nil, err
		}

		return invoke(v, name, args)
	}
}

// Call invokes the method called name on the instance with args.
func (l *Lazy[V]) Call(name string, args ...any) ([]any, error) {
	return l.Delegate(name)(args...)
}

// release empties the slot before running cleanup so a failing cleanup cannot
// leave the instance behind for the next test.
func (l *Lazy[V]) release(t T) {
	l.mu.Lock()
	v, ok := l.instance, l.created

	var zero V

	l.instance = zero
	l.created = false
	l.mu.Unlock()

	if !ok || l.cleanup == nil {
		return
	}

	if err := l.cleanup(v); err != nil {
		t.Helper()
		t.Errorf("%v", &CleanupError{Err: err})
	}
}

// Bind returns a function that calls fn on the instance of l.
//
//	count := suitekit.Bind(list, (*List).Len)
func Bind[V, R any](l *Lazy[V], fn func(V) R) func() R {
	return func() R {
		return fn(l.Get())
	}
}

// Bind1 is Bind for single-argument methods.
func Bind1[V, A, R any](l *Lazy[V], fn func(V, A) R) func(A) R {
	return func(a A) R {
		return fn(l.Get(), a)
	}
}

// Bind2 is Bind for two-argument methods.
func Bind2[V, A, B, R any](l *Lazy[V], fn func(V, A, B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(l.Get(), a, b)
	}
}
