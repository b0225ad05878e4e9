// Package suitekit provides per-test helpers for structuring test suites.
//
// # Helpers
//
// - Lazy: a memoized value, created on first access in a test and released after it.
// - Fresh: an unbounded supply of test doubles, each reset after the test that drew it.
// - Vary: a shared value that nested groupings can redefine.
//
// # Lifecycle
//
// The helpers never schedule anything themselves. They register hooks with a
// Lifecycle supplied by the test framework in use. The describe package provides
// one on top of testing.T; any other runner can implement the interface and check
// itself against the suitekittest contract suite.
//
// # Forwarding
//
// Go has no runtime proxies, so Lazy offers an explicit accessor (Get) plus two
// forwarding styles: typed binders over method expressions (Bind, Bind1, Bind2),
// checked at compile time, and name-based delegates (Delegate, Call) resolved by
// reflection when invoked.
package suitekit

// T is the subset of testing.TB the helpers report through.
type T interface {
	Helper()
	Name() string
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	Cleanup(fn func())
}

// Hook is a before-each or after-each callback.
type Hook func(t T)

// Lifecycle is the capability a test framework exposes to the helpers.
type Lifecycle interface {
	// BeforeEach registers fn to run before every test reached through the
	// grouping being defined. While a test is running, fn runs immediately.
	BeforeEach(fn Hook)

	// AfterEach registers fn to run after every test reached through the
	// grouping being defined. While a test is running, fn is attached to that
	// test only.
	AfterEach(fn Hook)

	// Running reports whether a test body or one of its hooks is executing.
	Running() bool

	// Current returns the executing test, or nil outside of one.
	Current() T

	// Group defines a named nested grouping whose definitions are made by body.
	Group(name string, body func())
}

// Factory produces a value for a helper.
type Factory[V any] func() (V, error)

// Func adapts a constructor that cannot fail into a Factory.
func Func[V any](fn func() V) Factory[V] {
	return func() (V, error) {
		return fn(), nil
	}
}

// Teardown releases or resets a value produced by a Factory.
type Teardown[V any] func(v V) error
