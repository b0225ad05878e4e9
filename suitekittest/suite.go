package suitekittest

import (
	"fmt"
	"testing"

	"github.com/ruffel/suitekit"
)

// Standard categories for grouping contracts.
const (
	CategoryLazy   = "lazy"
	CategoryFresh  = "fresh"
	CategoryVary   = "vary"
	CategoryErrors = "errors"
)

// Harness is a Lifecycle that can also define and run tests.
type Harness interface {
	suitekit.Lifecycle

	// It defines a test in the grouping being defined.
	It(name string, body func(t testing.TB))

	// Run executes every defined test as a subtest of the harness's
	// testing.TB and reports whether it is still passing.
	Run() bool
}

// TestCase defines a single behavioral contract requirement.
type TestCase struct {
	Category    string
	Name        string
	Description string

	// Run defines tests on h, runs it and checks what the tests recorded.
	Run func(t *testing.T, h Harness)
}

// ID returns the stable, globally unique contract identifier.
func (tc TestCase) ID() string {
	return fmt.Sprintf("%s/%s", tc.Category, tc.Name)
}

// Verify runs every contract against a fresh harness created on the
// contract's subtest. Contracts do not rely on the order their tests run in.
func Verify(t *testing.T, newHarness func(tb testing.TB) Harness) {
	t.Helper()

	for _, tc := range AllContracts() {
		t.Run(tc.ID(), func(t *testing.T) {
			tc.Run(t, newHarness(t))
		})
	}
}
