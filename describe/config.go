package describe

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/google/shlex"
	"github.com/rs/zerolog"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "SUITEKIT_"

// Config holds runner settings, usually taken from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"disabled"`
	Focus    string `env:"FOCUS"`
}

// DefaultConfig returns defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: zerolog.Disabled.String(),
	}
}

// LoadConfig reads the SUITEKIT_ environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// Level parses LogLevel. An empty value means disabled.
func (c Config) Level() (zerolog.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zerolog.Disabled, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.Disabled, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}

// FocusTerms splits Focus with shell quoting rules, so "'add item' checkout"
// yields two terms.
func (c Config) FocusTerms() ([]string, error) {
	terms, err := shlex.Split(c.Focus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse focus %q: %w", c.Focus, err)
	}

	return terms, nil
}
