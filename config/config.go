package config

import (
	"github.com/sirupsen/logrus"
)

// Config carries the solver's cross-cutting settings.
type Config struct {
	// Logger receives solver progress and statistics.
	Logger *logrus.Logger
	// Verbose enables per-solve statistics logging at debug level.
	Verbose bool
}

// New returns a config with a default logger at info level.
func New() *Config {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	return &Config{Logger: logger}
}

// SetVerbose toggles verbose mode, raising the log level accordingly.
func (c *Config) SetVerbose(v bool) {
	c.Verbose = v
	if v {
		c.Logger.SetLevel(logrus.DebugLevel)
	}
}
