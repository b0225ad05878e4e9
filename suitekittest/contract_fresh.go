package suitekittest

import (
	"slices"
	"testing"

	"github.com/ruffel/suitekit"
	"github.com/ruffel/suitekit/spy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshContracts() []TestCase {
	return []TestCase{
		freshSameIndexDistinctContract(),
		freshResetOnceAfterOwningTestContract(),
		freshSpyHistoryClearedContract(),
		freshUnboundedSequenceContract(),
	}
}

func freshSameIndexDistinctContract() TestCase {
	return TestCase{
		Category:    CategoryFresh,
		Name:        "same-index-distinct",
		Description: "Two accesses at the same index yield distinct instances, each reset after the test",
		Run: func(t *testing.T, h Harness) {
			var drawn []*spy.Spy

			m := suitekit.Spies(h)

			h.It("draws index zero twice", func(t testing.TB) {
				a := m.At(0)
				b := m.At(0)
				assert.NotSame(t, a, b)

				a.Call("a")
				b.Call("b")
				drawn = append(drawn, a, b)
			})

			require.True(t, h.Run())
			require.Len(t, drawn, 2)

			for _, s := range drawn {
				assert.False(t, s.Called())
			}
		},
	}
}

func freshResetOnceAfterOwningTestContract() TestCase {
	return TestCase{
		Category:    CategoryFresh,
		Name:        "reset-once-after-owning-test",
		Description: "Every instance is reset exactly once, after the test that drew it",
		Run: func(t *testing.T, h Harness) {
			type double struct{ owner string }

			var events []string

			m := suitekit.NewFresh(h,
				suitekit.Func(func() *double { return &double{} }),
				func(d *double) error {
					events = append(events, "reset "+d.owner)

					return nil
				},
			)

			h.It("first", func(t testing.TB) {
				for _, d := range m.Take(2) {
					d.owner = "first"
				}

				events = append(events, "ran first")
			})
			h.It("second", func(t testing.TB) {
				m.New().owner = "second"
				events = append(events, "ran second")
			})

			require.True(t, h.Run())
			require.Len(t, events, 5)

			first := slices.Index(events, "ran first")
			require.GreaterOrEqual(t, first, 0)
			require.LessOrEqual(t, first, 2)
			assert.Equal(t, []string{"ran first", "reset first", "reset first"}, events[first:first+3])

			second := slices.Index(events, "ran second")
			require.GreaterOrEqual(t, second, 0)
			require.LessOrEqual(t, second, 3)
			assert.Equal(t, []string{"ran second", "reset second"}, events[second:second+2])
		},
	}
}

func freshSpyHistoryClearedContract() TestCase {
	return TestCase{
		Category:    CategoryFresh,
		Name:        "spy-history-cleared",
		Description: "A called spy has empty history after its test and every test gets new spies",
		Run: func(t *testing.T, h Harness) {
			var drawn []*spy.Spy

			m := suitekit.Spies(h)

			h.It("calls one of two spies", func(t testing.TB) {
				s1, s2 := m.New(), m.New()
				s1.Call()

				s1.AssertNumberOfCalls(t, 1)
				s2.AssertNotCalled(t)

				drawn = append(drawn, s1, s2)
			})
			h.It("draws again", func(t testing.TB) {
				s3 := m.New()

				s3.AssertNotCalled(t)

				for _, s := range drawn {
					assert.NotSame(t, s, s3)
					s.AssertNotCalled(t)
				}

				drawn = append(drawn, s3)
			})

			require.True(t, h.Run())
			require.Len(t, drawn, 3)

			for _, s := range drawn {
				assert.False(t, s.Called())
			}
		},
	}
}

func freshUnboundedSequenceContract() TestCase {
	return TestCase{
		Category:    CategoryFresh,
		Name:        "unbounded-sequence",
		Description: "Len is unbounded and iteration draws new, reset-registered instances until stopped",
		Run: func(t *testing.T, h Harness) {
			var drawn []*spy.Spy

			m := suitekit.Spies(h)

			h.It("ranges partially", func(t testing.TB) {
				assert.Equal(t, suitekit.Unbounded, m.Len())

				for s := range m.All() {
					s.Call(len(drawn))
					drawn = append(drawn, s)

					if len(drawn) == 3 {
						break
					}
				}

				assert.NotSame(t, drawn[0], drawn[1])
				assert.NotSame(t, drawn[1], drawn[2])
			})

			require.True(t, h.Run())
			require.Len(t, drawn, 3)

			for _, s := range drawn {
				assert.False(t, s.Called())
			}
		},
	}
}
