package suitekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVary_DeferredSet(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	v := NewVary(lc, "x")
	v.Set("y")

	assert.Equal(t, "x", v.Get())
	require.Len(t, lc.before, 2)

	var seen string

	lc.test("reads", func(*fakeT) { seen = v.Get() })

	assert.Equal(t, "y", seen)
}

func TestVary_ImmediateSet(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	v := NewVary(lc, 1)

	var during, later int

	lc.test("sets", func(*fakeT) {
		v.Set(2)
		during = v.Get()
	})
	lc.test("reads", func(*fakeT) { later = v.Get() })

	assert.Equal(t, 2, during)
	assert.Equal(t, 1, later)
	assert.Len(t, lc.before, 1)
}

func TestVary_CreatedInsideTest(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}

	lc.test("local", func(*fakeT) {
		v := NewVary(lc, "a")
		assert.Equal(t, "b", v.Call("b"))
	})

	assert.Empty(t, lc.before)
}

func TestVary_Call(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	v := NewVary(lc, 10)

	assert.Equal(t, 10, v.Call())
	assert.Equal(t, 10, v.Call(20))

	var seen int

	lc.test("reads", func(*fakeT) { seen = v.Call() })
	assert.Equal(t, 20, seen)

	assert.PanicsWithError(t, "suitekit: setter accepts at most one value: got 3", func() {
		v.Call(1, 2, 3)
	})
}

func TestVary_Each(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	v := NewVary(lc, "none")

	var bodies int

	v.Each("a", "b")("mode=%s", func() { bodies++ })

	assert.Equal(t, []string{"mode=a", "mode=b"}, lc.groups)
	assert.Equal(t, 2, bodies)

	// One reset to the initial value plus one setter per variation; the fake
	// lifecycle is flat, so the last variation wins.
	require.Len(t, lc.before, 3)

	var seen string

	lc.test("reads", func(*fakeT) { seen = v.Get() })
	assert.Equal(t, "b", seen)
}
