package suitekit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingFresh(lc Lifecycle) (*Fresh[*box], map[*box]int) {
	resets := map[*box]int{}

	f := NewFresh(lc, Func(newBox), func(b *box) error {
		resets[b]++

		return nil
	})

	return f, resets
}

func TestFresh_NeverMemoized(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	f, resets := countingFresh(lc)

	var drawn []*box

	lc.test("draws", func(*fakeT) {
		drawn = append(drawn, f.New(), f.New(), f.At(1), f.At(1))
		drawn = append(drawn, f.Take(2)...)
	})

	require.Len(t, drawn, 6)

	for i, a := range drawn {
		for _, b := range drawn[i+1:] {
			assert.NotSame(t, a, b)
		}

		assert.Equal(t, 1, resets[a])
	}
}

func TestFresh_ResetOnlyAfterOwningTest(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	f, resets := countingFresh(lc)

	var first *box

	lc.test("first", func(*fakeT) { first = f.New() })
	lc.test("second", func(*fakeT) { f.New() })

	assert.Equal(t, 1, resets[first])
	assert.Len(t, resets, 2)
}

func TestFresh_DefinitionTimeInstance(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	f, resets := countingFresh(lc)

	shared := f.At(0)

	lc.test("first", func(*fakeT) { shared.Inc() })
	lc.test("second", func(*fakeT) { shared.Inc() })

	assert.Equal(t, 2, resets[shared])
	assert.Len(t, lc.after, 1)
}

func TestFresh_All(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	f, resets := countingFresh(lc)

	assert.Equal(t, Unbounded, f.Len())

	n := 0

	lc.test("ranges", func(*fakeT) {
		for range f.All() {
			n++
			if n == 5 {
				break
			}
		}
	})

	assert.Equal(t, 5, n)
	assert.Len(t, resets, 5)
}

func TestFresh_NilResetRegistersNothing(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	f := NewFresh(lc, Func(newBox), nil)

	f.New()
	assert.Empty(t, lc.after)
}

func TestFresh_Failures(t *testing.T) {
	t.Parallel()

	t.Run("reset", func(t *testing.T) {
		t.Parallel()

		lc := &fakeLifecycle{}
		f := NewFresh(lc, Func(newBox), func(*box) error { return errors.New("stuck") })

		ft := lc.test("draws", func(*fakeT) { f.New() })

		require.Len(t, ft.errors, 1)
		assert.Contains(t, ft.errors[0], "teardown failed: stuck")
	})

	t.Run("factory", func(t *testing.T) {
		t.Parallel()

		lc := &fakeLifecycle{}
		f := NewFresh(lc, func() (*box, error) { return nil, errors.New("empty") }, nil)

		ft := lc.test("draws", func(*fakeT) { f.New() })

		assert.Contains(t, ft.fatal, "factory failed: empty")
	})

	t.Run("negative index", func(t *testing.T) {
		t.Parallel()

		f := NewFresh(&fakeLifecycle{}, Func(newBox), nil)

		assert.PanicsWithError(t, "suitekit: index must not be negative: -2", func() { f.At(-2) })
		assert.PanicsWithError(t, "suitekit: index must not be negative: -1", func() { f.Take(-1) })
		assert.Empty(t, f.Take(0))
	})
}

func TestSpies(t *testing.T) {
	t.Parallel()

	lc := &fakeLifecycle{}
	m := Spies(lc)

	s := m.New().Return("ok")

	lc.test("calls", func(*fakeT) {
		assert.Equal(t, "ok", s.Call(1).String(0))
		assert.True(t, s.Called())
	})

	assert.False(t, s.Called())
	assert.Equal(t, "ok", s.Call().String(0))
}
