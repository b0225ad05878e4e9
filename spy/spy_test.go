package spy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingT captures assertion failures instead of failing the test.
type recordingT struct {
	failures []string
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestSpy_RecordsCalls(t *testing.T) {
	t.Parallel()

	s := New()

	assert.False(t, s.Called())
	assert.Nil(t, s.LastCall())

	s.Call("a", 1)
	s.Call()

	require.Equal(t, 2, s.CallCount())
	assert.Equal(t, []mock.Arguments{{"a", 1}, {}}, s.Calls())
	assert.Equal(t, mock.Arguments{}, s.LastCall())
}

func TestSpy_CallsIsACopy(t *testing.T) {
	t.Parallel()

	s := New()
	s.Call("a")

	calls := s.Calls()
	calls[0] = mock.Arguments{"changed"}

	assert.Equal(t, "a", s.LastCall().String(0))
}

func TestSpy_ReturnAndRun(t *testing.T) {
	t.Parallel()

	var seen []mock.Arguments

	s := New().
		Return(42, nil).
		Run(func(args mock.Arguments) { seen = append(seen, args) })

	out := s.Call("x")

	assert.Equal(t, 42, out.Int(0))
	require.NoError(t, out.Error(1))
	assert.Equal(t, []mock.Arguments{{"x"}}, seen)
}

func TestSpy_Reset(t *testing.T) {
	t.Parallel()

	s := New().Return("kept")
	s.Call(1)
	s.Call(2)

	s.Reset()

	assert.Equal(t, 0, s.CallCount())
	assert.Empty(t, s.Calls())
	assert.Equal(t, "kept", s.Call().String(0))
}

func TestSpy_Assertions(t *testing.T) {
	t.Parallel()

	s := New()
	s.Call("load", 3)

	assert.True(t, s.AssertCalled(t, "load", 3))
	assert.True(t, s.AssertCalled(t, "load", mock.Anything))
	assert.True(t, s.AssertCalled(t, mock.AnythingOfType("string"), mock.AnythingOfType("int")))
	assert.True(t, s.AssertNumberOfCalls(t, 1))

	rt := &recordingT{}

	assert.False(t, s.AssertCalled(rt, "save"))
	assert.False(t, s.AssertNotCalled(rt))
	assert.False(t, s.AssertNumberOfCalls(rt, 2))
	require.Len(t, rt.failures, 3)
	assert.Contains(t, rt.failures[0], "spy was not called with the expected arguments")
	assert.Contains(t, rt.failures[1], "spy should not have been called")

	s.Reset()
	assert.True(t, s.AssertNotCalled(t))
}
