package suitekit

import "sync"

// Vary holds one current value that groupings can redefine for the tests they
// contain.
type Vary[V any] struct {
	lc Lifecycle

	mu    sync.Mutex
	value V
}

// NewVary creates a Vary holding initial. Created during definition, it also
// restores initial before every test so a redefinition never escapes the
// grouping that made it.
func NewVary[V any](lc Lifecycle, initial V) *Vary[V] {
	v := &Vary[V]{
		lc:    lc,
		value: initial,
	}

	if !lc.Running() {
		lc.BeforeEach(func(T) { v.store(initial) })
	}

	return v
}

// Get returns the current value.
func (v *Vary[V]) Get() V {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.value
}

// Set redefines the value. Inside a running test it applies at once for the
// rest of that test; during definition it is deferred to the start of every
// test in the current grouping.
func (v *Vary[V]) Set(x V) {
	if v.lc.Running() {
		v.store(x)

		return
	}

	v.lc.BeforeEach(func(T) { v.store(x) })
}

// Call reads the value when given nothing and sets it when given one value.
// More than one value is a programming error and panics with *ArityError.
func (v *Vary[V]) Call(args ...V) V {
	switch len(args) {
	case 0:
	case 1:
		v.Set(args[0])
	default:
		panic(&ArityError{Got: len(args)})
	}

	return v.Get()
}

// Each returns a grouping factory: for every value it defines a grouping named
// from name whose tests see that value, then runs body inside it. The value is
// set ahead of every before-each hook body declares.
func (v *Vary[V]) Each(values ...V) func(name string, body func()) {
	return func(name string, body func()) {
		Each(v.lc, values, name, func(x V) {
			v.lc.BeforeEach(func(T) { v.store(x) })
			body()
		})
	}
}

func (v *Vary[V]) store(x V) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.value = x
}
