package suitekit

import "fmt"

// failNow unwinds a fakeT.Fatalf the way runtime.Goexit unwinds testing.T.
type failNow struct{}

type fakeT struct {
	name     string
	errors   []string
	fatal    string
	cleanups []func()
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return f.name }

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatal = fmt.Sprintf(format, args...)

	panic(failNow{})
}

func (f *fakeT) Cleanup(fn func()) {
	f.cleanups = append(f.cleanups, fn)
}

// fakeLifecycle is a single flat grouping driven by hand.
type fakeLifecycle struct {
	before  []Hook
	after   []Hook
	groups  []string
	current *fakeT
}

func (f *fakeLifecycle) BeforeEach(fn Hook) {
	if f.current != nil {
		fn(f.current)

		return
	}

	f.before = append(f.before, fn)
}

func (f *fakeLifecycle) AfterEach(fn Hook) {
	if cur := f.current; cur != nil {
		cur.Cleanup(func() { fn(cur) })

		return
	}

	f.after = append(f.after, fn)
}

func (f *fakeLifecycle) Running() bool {
	return f.current != nil
}

func (f *fakeLifecycle) Current() T {
	if f.current == nil {
		return nil
	}

	return f.current
}

func (f *fakeLifecycle) Group(name string, body func()) {
	f.groups = append(f.groups, name)
	body()
}

// test runs before hooks and body, then test-local cleanups and after hooks,
// both in reverse order of registration.
func (f *fakeLifecycle) test(name string, body func(t *fakeT)) *fakeT {
	t := &fakeT{name: name}
	f.current = t

	defer func() { f.current = nil }()

	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(failNow); !ok {
					panic(r)
				}
			}
		}()

		for _, h := range f.before {
			h(t)
		}

		body(t)
	}()

	for i := len(t.cleanups) - 1; i >= 0; i-- {
		t.cleanups[i]()
	}

	for i := len(f.after) - 1; i >= 0; i-- {
		f.after[i](t)
	}

	return t
}
