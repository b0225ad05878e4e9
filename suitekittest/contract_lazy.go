package suitekittest

import (
	"testing"

	"github.com/ruffel/suitekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is the instance type the contracts memoize and forward to.
type counter struct {
	Count int
}

func (c *counter) Add(n int) int {
	c.Count += n

	return c.Count
}

func lazyContracts() []TestCase {
	return []TestCase{
		lazyMemoizedWithinTestContract(),
		lazyNewInstancePerTestContract(),
		lazyCleanupOncePerCreatingTestContract(),
		lazyForwardingContract(),
	}
}

func lazyMemoizedWithinTestContract() TestCase {
	return TestCase{
		Category:    CategoryLazy,
		Name:        "memoized-within-test",
		Description: "Repeated access in one test invokes the factory once and yields the same instance",
		Run: func(t *testing.T, h Harness) {
			calls := 0
			l := suitekit.NewLazy(h, suitekit.Func(func() *counter {
				calls++

				return &counter{}
			}))

			h.It("reads twice", func(t testing.TB) {
				first := l.Get()
				second := l.Get()

				assert.Same(t, first, second)
				assert.True(t, l.Created())
			})

			require.True(t, h.Run())
			assert.Equal(t, 1, calls)
		},
	}
}

func lazyNewInstancePerTestContract() TestCase {
	return TestCase{
		Category:    CategoryLazy,
		Name:        "new-instance-per-test",
		Description: "The first access in a later test invokes the factory again",
		Run: func(t *testing.T, h Harness) {
			var seen []*counter

			l := suitekit.NewLazy(h, suitekit.Func(func() *counter { return &counter{} }))

			h.It("first", func(t testing.TB) {
				assert.False(t, l.Created())
				seen = append(seen, l.Get())
			})
			h.It("second", func(t testing.TB) {
				assert.False(t, l.Created())
				seen = append(seen, l.Get())
			})

			require.True(t, h.Run())
			require.Len(t, seen, 2)
			assert.NotSame(t, seen[0], seen[1])
		},
	}
}

func lazyCleanupOncePerCreatingTestContract() TestCase {
	return TestCase{
		Category:    CategoryLazy,
		Name:        "cleanup-once-per-creating-test",
		Description: "Cleanup receives the instance once per test that created one and is skipped otherwise",
		Run: func(t *testing.T, h Harness) {
			var (
				created []*counter
				cleaned []*counter
			)

			l := suitekit.NewLazy(h,
				suitekit.Func(func() *counter {
					c := &counter{}
					created = append(created, c)

					return c
				}),
				suitekit.WithCleanup(func(c *counter) error {
					cleaned = append(cleaned, c)

					return nil
				}),
			)

			h.It("creates", func(t testing.TB) {
				l.Get().Add(1)
				l.Get().Add(1)
			})
			h.It("does not touch the value", func(t testing.TB) {})
			h.It("creates again", func(t testing.TB) {
				assert.Equal(t, 0, l.Get().Count)
			})

			require.True(t, h.Run())
			require.Len(t, created, 2)
			assert.Equal(t, created, cleaned)
			assert.ElementsMatch(t, []int{0, 2}, []int{cleaned[0].Count, cleaned[1].Count})
		},
	}
}

func lazyForwardingContract() TestCase {
	return TestCase{
		Category:    CategoryLazy,
		Name:        "forwarding",
		Description: "Bound and named delegates create the instance on demand and call it as receiver",
		Run: func(t *testing.T, h Harness) {
			l := suitekit.NewLazy(h, suitekit.Func(func() *counter { return &counter{} }))
			add := suitekit.Bind1(l, (*counter).Add)
			addByName := l.Delegate("Add")

			h.It("forwards", func(t testing.TB) {
				assert.False(t, l.Created())
				assert.Equal(t, 2, add(2))

				out, err := addByName(3)
				require.NoError(t, err)
				assert.Equal(t, []any{5}, out)
				assert.Equal(t, 5, l.Get().Count)
			})

			require.True(t, h.Run())
		},
	}
}
