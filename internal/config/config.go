// Package config loads CLI configuration from environment variables, with an
// optional .env file for local development.
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the config struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

var defaultEnvLoaded sync.Once

// Load loads environment variables into the provided configuration struct.
// It first attempts to load the default .env file (missing files are fine),
// then parses environment variables based on field tags.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Serve holds the introspection server settings.
type Serve struct {
	Addr     string `env:"MACHINA_ADDR" envDefault:":8080"`
	LogLevel string `env:"MACHINA_LOG_LEVEL" envDefault:"info"`
}
