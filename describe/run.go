package describe

import (
	"github.com/rs/zerolog"
	"go.llib.dev/testcase"
)

// Run executes every defined test as a subtest of the suite's testing.TB and
// reports whether it is still passing afterwards. Run may be called once; a
// suite that is never run is finished when its testing.TB cleans up.
func (s *Suite) Run() bool {
	s.tb.Helper()

	s.mu.Lock()
	errs := s.cfgErrs
	s.mu.Unlock()

	for _, err := range errs {
		s.tb.Errorf("describe: %v", err)
	}

	s.spec.Finish()

	return !s.tb.Failed()
}

// begin marks t as the running test. It is the first before hook of the suite.
func (s *Suite) begin(t *testcase.T) {
	log := s.logger(t).With().Str("test", t.Name()).Logger()

	s.mu.Lock()
	s.current = t
	s.log = log
	s.mu.Unlock()
}

// end runs after every other after hook of the test.
func (s *Suite) end(t *testcase.T) {
	log := s.trace()
	log.Info().Bool("failed", t.Failed()).Msg("finished")

	s.mu.Lock()
	s.current = nil
	s.log = zerolog.Nop()
	s.mu.Unlock()
}

func (s *Suite) trace() *zerolog.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log

	return &log
}

func (s *Suite) logger(t *testcase.T) zerolog.Logger {
	if s.level == zerolog.Disabled {
		return zerolog.Nop()
	}

	w := zerolog.NewConsoleWriter(zerolog.ConsoleTestWriter(t), func(w *zerolog.ConsoleWriter) {
		w.NoColor = true
	})

	return zerolog.New(w).Level(s.level).With().Timestamp().Logger()
}
