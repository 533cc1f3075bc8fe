package covmark

import (
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/phuslu/log"
)

// Config is read from the environment the first time a check is entered.
type Config struct {
	// LogLevel of the package's own diagnostics on stderr.
	LogLevel string `env:"COVMARK_LOG_LEVEL" envDefault:"warn"`
	// Verbose makes every passing check log its hit count to the test.
	Verbose bool `env:"COVMARK_VERBOSE"`
}

// LoadConfig parses Config from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{LogLevel: "warn"}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

var (
	setupOnce sync.Once
	config    Config
	logger    log.Logger
)

func setup() {
	setupOnce.Do(func() {
		c, err := LoadConfig()
		config = c
		logger = newLogger(c)
		if err != nil {
			logger.Warn().Err(err).Msg("using default configuration")
		}
	})
}

func newLogger(c Config) log.Logger {
	return log.Logger{
		Level:   log.ParseLevel(c.LogLevel),
		Writer:  &log.IOWriter{Writer: os.Stderr},
		Context: log.NewContext(nil).Str("module", "covmark").Value(),
	}
}
