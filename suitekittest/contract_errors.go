package suitekittest

import (
	"errors"
	"testing"

	"github.com/ruffel/suitekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorContracts() []TestCase {
	return []TestCase{
		arityMisusePanicsContract(),
		factoryFailureRetriesContract(),
		forwardUnknownMethodContract(),
		negativeIndexPanicsContract(),
	}
}

func arityMisusePanicsContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "arity-misuse-panics",
		Description: "Calling a Vary with two values panics with *suitekit.ArityError at definition time",
		Run: func(t *testing.T, h Harness) {
			v := suitekit.NewVary(h, "x")

			defer func() {
				r := recover()
				require.NotNil(t, r)

				err, ok := r.(error)
				require.True(t, ok)
				require.ErrorIs(t, err, suitekit.ErrArity)

				var arity *suitekit.ArityError
				require.ErrorAs(t, err, &arity)
				assert.Equal(t, 2, arity.Got)
			}()

			v.Call("a", "b")
		},
	}
}

func factoryFailureRetriesContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "factory-failure-retries",
		Description: "A failing factory caches nothing and the next access in the same test retries",
		Run: func(t *testing.T, h Harness) {
			boom := errors.New("boom")
			calls := 0

			l := suitekit.NewLazy(h, func() (*counter, error) {
				calls++
				if calls == 1 {
					return nil, boom
				}

				return &counter{}, nil
			})

			h.It("retries", func(t testing.TB) {
				_, err := l.Load()
				require.ErrorIs(t, err, boom)

				var factoryErr *suitekit.FactoryError
				require.ErrorAs(t, err, &factoryErr)
				assert.False(t, l.Created())

				c, err := l.Load()
				require.NoError(t, err)
				assert.Same(t, c, l.Get())
			})

			require.True(t, h.Run())
			assert.Equal(t, 2, calls)
		},
	}
}

func forwardUnknownMethodContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "forward-unknown-method",
		Description: "Delegating an unknown name is accepted and fails only when invoked",
		Run: func(t *testing.T, h Harness) {
			l := suitekit.NewLazy(h, suitekit.Func(func() *counter { return &counter{} }))
			missing := l.Delegate("Missing")

			h.It("invokes", func(t testing.TB) {
				assert.False(t, l.Created())

				_, err := missing()
				require.ErrorIs(t, err, suitekit.ErrNoSuchMethod)

				var fwd *suitekit.ForwardError
				require.ErrorAs(t, err, &fwd)
				assert.Equal(t, "Missing", fwd.Method)

				_, err = l.Call("Add", "not an int")
				require.ErrorIs(t, err, suitekit.ErrBadArguments)
			})

			require.True(t, h.Run())
		},
	}
}

func negativeIndexPanicsContract() TestCase {
	return TestCase{
		Category:    CategoryErrors,
		Name:        "negative-index-panics",
		Description: "Drawing at a negative index panics with suitekit.ErrIndex",
		Run: func(t *testing.T, h Harness) {
			m := suitekit.Spies(h)

			h.It("draws", func(t testing.TB) {
				assert.PanicsWithError(t, "suitekit: index must not be negative: -1", func() { m.At(-1) })
			})

			require.True(t, h.Run())
		},
	}
}
