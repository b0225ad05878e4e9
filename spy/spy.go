package spy

import (
	"fmt"
	"strings"
	"sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Spy records every call made through Call and answers with configured values.
type Spy struct {
	mu      sync.Mutex
	calls   []mock.Arguments
	returns mock.Arguments
	run     func(mock.Arguments)
}

// New creates a spy with an empty history that returns nothing.
func New() *Spy {
	return &Spy{}
}

// Call records args and returns the configured return values.
func (s *Spy) Call(args ...any) mock.Arguments {
	recorded := make(mock.Arguments, len(args))
	copy(recorded, args)

	s.mu.Lock()
	s.calls = append(s.calls, recorded)
	run, returns := s.run, s.returns
	s.mu.Unlock()

	if run != nil {
		run(recorded)
	}

	return returns
}

// Return sets the values handed back by every subsequent Call.
func (s *Spy) Return(values ...any) *Spy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.returns = mock.Arguments(values)

	return s
}

// Run sets a callback invoked with the arguments of every subsequent Call.
func (s *Spy) Run(fn func(args mock.Arguments)) *Spy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.run = fn

	return s
}

// Calls returns a copy of the recorded invocation history.
func (s *Spy) Calls() []mock.Arguments {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]mock.Arguments(nil), s.calls...)
}

// CallCount returns the number of recorded calls.
func (s *Spy) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.calls)
}

// Called reports whether the spy has been called since the last reset.
func (s *Spy) Called() bool {
	return s.CallCount() > 0
}

// LastCall returns the arguments of the most recent call, or nil.
func (s *Spy) LastCall() mock.Arguments {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.calls) == 0 {
		return nil
	}

	return s.calls[len(s.calls)-1]
}

// Reset clears the invocation history. Configured return values and callbacks
// are kept.
func (s *Spy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = nil
}

// AssertCalled asserts that at least one recorded call matches args.
// mock.Anything and mock.AnythingOfType can be used as matchers.
func (s *Spy) AssertCalled(t assert.TestingT, args ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	expected := mock.Arguments(args)

	calls := s.Calls()
	for _, c := range calls {
		if _, diffs := expected.Diff(c); diffs == 0 {
			return true
		}
	}

	return assert.Fail(t, "spy was not called with the expected arguments",
		"expected: %v\nrecorded:\n%s", args, history(calls))
}

// AssertNotCalled asserts that the spy has no recorded calls.
func (s *Spy) AssertNotCalled(t assert.TestingT) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	calls := s.Calls()
	if len(calls) == 0 {
		return true
	}

	return assert.Fail(t, "spy should not have been called", "recorded:\n%s", history(calls))
}

// AssertNumberOfCalls asserts that the spy was called exactly n times.
func (s *Spy) AssertNumberOfCalls(t assert.TestingT, n int) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	return assert.Len(t, s.Calls(), n, "unexpected number of spy calls")
}

func history(calls []mock.Arguments) string {
	if len(calls) == 0 {
		return "  (none)"
	}

	var b strings.Builder

	for i, c := range calls {
		fmt.Fprintf(&b, "  %d: %v\n", i, []any(c))
	}

	return b.String()
}
