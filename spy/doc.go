// Package spy provides a callable test double that records its invocations.
//
// It is the default instance type of suitekit.Spies, where every spy drawn in a
// test is reset once that test ends.
//
// Usage:
//
//	s := spy.New().Return(42)
//	got := s.Call("a", 1).Int(0)
//	s.AssertCalled(t, "a", mock.Anything)
package spy
