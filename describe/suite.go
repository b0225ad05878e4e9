package describe

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/ruffel/suitekit"
	"go.llib.dev/testcase"
)

// ErrRunning indicates a grouping or test was defined while a test was running.
var ErrRunning = errors.New("cannot define groups or tests while a test is running")

// Suite adapts a testcase.Spec to suitekit.Lifecycle. Groupings map to
// Spec.Describe, hooks to Spec.Before and Spec.After, tests to Spec.Test.
// Tests run one at a time; calling t.Parallel from a test body is not supported.
type Suite struct {
	mu    sync.Mutex
	tb    testing.TB
	spec  *testcase.Spec
	scope *testcase.Spec
	path  []string
	names []string

	current *testcase.T
	log     zerolog.Logger

	level   zerolog.Level
	focus   []string
	cfgErrs []error
}

var _ suitekit.Lifecycle = (*Suite)(nil)

// Option defines a functional option for a Suite.
type Option func(*Suite)

// WithConfig replaces the configuration read from the environment.
func WithConfig(cfg Config) Option {
	return func(s *Suite) {
		s.cfgErrs = s.apply(cfg)
	}
}

// WithLogLevel sets the level of hook tracing.
func WithLogLevel(lvl zerolog.Level) Option {
	return func(s *Suite) {
		s.level = lvl
	}
}

// WithFocus restricts the run to tests whose full name contains one of terms.
func WithFocus(terms ...string) Option {
	return func(s *Suite) {
		s.focus = terms
	}
}

// New creates an empty suite on tb, configured from the environment, then from
// opts. Configuration problems are reported as failures when the suite runs.
func New(tb testing.TB, opts ...Option) *Suite {
	tb.Helper()

	s := &Suite{
		tb:   tb,
		spec: testcase.NewSpec(tb),
		log:  zerolog.Nop(),
	}
	s.scope = s.spec

	cfg, err := LoadConfig()
	if err != nil {
		s.cfgErrs = append(s.cfgErrs, err)
	}

	s.cfgErrs = append(s.cfgErrs, s.apply(cfg)...)

	for _, o := range opts {
		o(s)
	}

	// Registered first, so begin runs before every other hook and end after.
	s.spec.Before(s.begin)
	s.spec.After(s.end)

	return s
}

func (s *Suite) apply(cfg Config) []error {
	var errs []error

	lvl, err := cfg.Level()
	if err != nil {
		errs = append(errs, err)
	}

	terms, err := cfg.FocusTerms()
	if err != nil {
		errs = append(errs, err)
	}

	s.level = lvl
	s.focus = terms

	return errs
}

// Describe defines a nested grouping. Definitions made by body belong to it.
func (s *Suite) Describe(name string, body func()) {
	s.mu.Lock()

	if s.current != nil {
		s.mu.Unlock()
		panic(fmt.Errorf("describe: %w: Describe(%q)", ErrRunning, name))
	}

	parent, path := s.scope, s.path
	s.mu.Unlock()

	parent.Describe(name, func(sub *testcase.Spec) {
		s.mu.Lock()
		s.scope = sub
		s.path = append(slices.Clone(path), name)
		s.mu.Unlock()

		defer func() {
			s.mu.Lock()
			s.scope, s.path = parent, path
			s.mu.Unlock()
		}()

		body()
	})
}

// Group is Describe, satisfying suitekit.Lifecycle.
func (s *Suite) Group(name string, body func()) {
	s.Describe(name, body)
}

// It defines a test in the current grouping. body receives the running
// *testcase.T. Tests outside the focus are not defined at all.
func (s *Suite) It(name string, body func(t testing.TB)) {
	s.mu.Lock()

	if s.current != nil {
		s.mu.Unlock()
		panic(fmt.Errorf("describe: %w: It(%q)", ErrRunning, name))
	}

	full := fullName(append(slices.Clone(s.path), name))
	scope := s.scope

	if !s.focused(full) {
		s.mu.Unlock()

		return
	}

	s.names = append(s.names, full)
	s.mu.Unlock()

	scope.Test(name, func(t *testcase.T) {
		s.trace().Info().Str("test", full).Msg("running")
		body(t)
	})
}

// BeforeEach attaches fn to the current grouping, or runs it at once when a
// test is running. Hooks of a grouping must be attached before its tests.
func (s *Suite) BeforeEach(fn suitekit.Hook) {
	s.mu.Lock()

	cur, scope, group := s.current, s.scope, fullName(s.path)
	s.mu.Unlock()

	if cur != nil {
		fn(cur)

		return
	}

	scope.Before(func(t *testcase.T) {
		s.trace().Debug().Str("group", group).Msg("before each")
		fn(t)
	})
}

// AfterEach attaches fn to the current grouping, or to the running test only.
// After hooks run in reverse order of attachment, innermost grouping first.
func (s *Suite) AfterEach(fn suitekit.Hook) {
	s.mu.Lock()

	cur, scope, group := s.current, s.scope, fullName(s.path)
	s.mu.Unlock()

	if cur != nil {
		cur.Defer(func() { fn(cur) })

		return
	}

	scope.After(func(t *testcase.T) {
		s.trace().Debug().Str("group", group).Msg("after each")
		fn(t)
	})
}

// Running reports whether a test or its hooks are executing.
func (s *Suite) Running() bool {
	return s.Current() != nil
}

// Current returns the executing test, or nil.
func (s *Suite) Current() suitekit.T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	return s.current
}

// Each defines one grouping per value, see suitekit.Each.
func Each[V any](s *Suite, values []V, name string, body func(v V)) {
	suitekit.Each(s, values, name, body)
}

// Plan returns the full name of every defined test in definition order, with
// grouping names joined by spaces. Tests outside the focus are left out.
func (s *Suite) Plan() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.names)
}

func (s *Suite) focused(name string) bool {
	if len(s.focus) == 0 {
		return true
	}

	for _, term := range s.focus {
		if strings.Contains(name, term) {
			return true
		}
	}

	return false
}

func fullName(path []string) string {
	return strings.Join(path, " ")
}
