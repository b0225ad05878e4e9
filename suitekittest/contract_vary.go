package suitekittest

import (
	"testing"

	"github.com/ruffel/suitekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func varyContracts() []TestCase {
	return []TestCase{
		varyGroupScopedSetContract(),
		varyNestedOverrideContract(),
		varyImmediateSetContract(),
		varyEachContract(),
		varyEachPrecedesBodyHooksContract(),
	}
}

func varyGroupScopedSetContract() TestCase {
	return TestCase{
		Category:    CategoryVary,
		Name:        "group-scoped-set",
		Description: "A set declared in a grouping is seen by its tests and not by siblings outside it",
		Run: func(t *testing.T, h Harness) {
			seen := map[string]string{}

			v := suitekit.NewVary(h, "x")

			h.Group("G1", func() {
				v.Set("y")
				h.It("inside", func(t testing.TB) { seen["inside"] = v.Get() })
			})
			h.It("sibling", func(t testing.TB) { seen["sibling"] = v.Call() })

			require.True(t, h.Run())
			assert.Equal(t, map[string]string{"inside": "y", "sibling": "x"}, seen)
		},
	}
}

func varyNestedOverrideContract() TestCase {
	return TestCase{
		Category:    CategoryVary,
		Name:        "nested-override",
		Description: "An outer set reaches nested groupings unless a deeper set overrides it",
		Run: func(t *testing.T, h Harness) {
			seen := map[string]int{}

			v := suitekit.NewVary(h, 1)

			h.Group("outer", func() {
				v.Set(2)
				h.It("outer test", func(t testing.TB) { seen["outer"] = v.Get() })

				h.Group("middle", func() {
					h.It("middle test", func(t testing.TB) { seen["middle"] = v.Get() })

					h.Group("inner", func() {
						v.Call(3)
						h.It("inner test", func(t testing.TB) { seen["inner"] = v.Get() })
					})
				})
			})

			require.True(t, h.Run())
			assert.Equal(t, map[string]int{"outer": 2, "middle": 2, "inner": 3}, seen)
		},
	}
}

func varyImmediateSetContract() TestCase {
	return TestCase{
		Category:    CategoryVary,
		Name:        "immediate-set",
		Description: "A set made inside a test applies at once and does not outlive the test's grouping scope",
		Run: func(t *testing.T, h Harness) {
			var later string

			v := suitekit.NewVary(h, "initial")

			h.It("sets", func(t testing.TB) {
				v.Set("changed")
				assert.Equal(t, "changed", v.Get())
				assert.Equal(t, "again", v.Call("again"))
			})
			h.It("reads", func(t testing.TB) { later = v.Get() })

			require.True(t, h.Run())
			assert.Equal(t, "initial", later)
		},
	}
}

func varyEachContract() TestCase {
	return TestCase{
		Category:    CategoryVary,
		Name:        "each",
		Description: "Each defines one named grouping per value and its tests see that value",
		Run: func(t *testing.T, h Harness) {
			seen := map[string]string{}

			v := suitekit.NewVary(h, "none")

			v.Each("a", "b")("value=%s", func() {
				h.It("reads", func(t testing.TB) { seen[t.Name()] = v.Get() })
				h.It("reads again", func(t testing.TB) { seen[t.Name()] = v.Get() })
			})

			require.True(t, h.Run())
			require.Len(t, seen, 4)

			for name, value := range seen {
				assert.Contains(t, name, "value="+value)
			}
		},
	}
}

func varyEachPrecedesBodyHooksContract() TestCase {
	return TestCase{
		Category:    CategoryVary,
		Name:        "each-precedes-body-hooks",
		Description: "The value of an Each grouping is in place before the grouping's own before-each hooks",
		Run: func(t *testing.T, h Harness) {
			var hooked []int

			v := suitekit.NewVary(h, 0)

			v.Each(1, 2, 3)("n", func() {
				h.BeforeEach(func(suitekit.T) { hooked = append(hooked, v.Get()) })
				h.It("runs", func(t testing.TB) {})
			})

			require.True(t, h.Run())
			assert.ElementsMatch(t, []int{1, 2, 3}, hooked)
		},
	}
}
