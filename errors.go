package suitekit

import (
	"errors"
	"fmt"
)

// ErrArity indicates a call-style setter was given more than one value.
var ErrArity = errors.New("setter accepts at most one value")

// ErrIndex indicates a negative index was used to draw an instance.
var ErrIndex = errors.New("index must not be negative")

// ErrNoSuchMethod indicates a forwarded name resolves to no method or func field.
var ErrNoSuchMethod = errors.New("no such method")

// ErrBadArguments indicates forwarded arguments do not fit the target signature.
var ErrBadArguments = errors.New("arguments do not match method signature")

// ErrReentrant indicates a factory accessed the Lazy it is creating a value for.
var ErrReentrant = errors.New("factory reentered the value it is creating")

// ArityError is raised when a Vary is called with two or more values.
type ArityError struct {
	Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("suitekit: %v: got %d", ErrArity, e.Got)
}

func (e *ArityError) Unwrap() error {
	return ErrArity
}

// FactoryError wraps a failure returned by a Factory. Nothing is cached when it
// occurs; the next access retries.
type FactoryError struct {
	Err error
}

func (e *FactoryError) Error() string {
	return fmt.Sprintf("suitekit: factory failed: %v", e.Err)
}

func (e *FactoryError) Unwrap() error {
	return e.Err
}

// CleanupError wraps a failure returned by a cleanup or reset Teardown.
type CleanupError struct {
	Err error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("suitekit: teardown failed: %v", e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}

// ForwardError represents a failure to forward a call to a memoized instance.
type ForwardError struct {
	Method string
	Err    error
}

func (e *ForwardError) Error() string {
	return fmt.Sprintf("suitekit: forwarding %q: %v", e.Method, e.Err)
}

func (e *ForwardError) Unwrap() error {
	return e.Err
}

// fail reports err on the running test, or panics when there is none.
func fail(lc Lifecycle, err error) {
	if t := lc.Current(); t != nil {
		t.Helper()
		t.Fatalf("%v", err)

		return
	}

	panic(err)
}
