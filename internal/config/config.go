package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"payroll-analyzer/internal/config/configs"
)

// ErrInvalidPort is returned when PORT is set to 0. Values that are not
// numeric or do not fit into 16 bits are rejected by the parser itself.
var ErrInvalidPort = errors.New("PORT must be between 1 and 65535")

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to the startup log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server, including the bare
	// PORT variable.
	HTTP configs.HTTP

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// EntryPoint selects an external application to run instead of the
	// built-in analyzer. Environment variables prefixed with ENTRYPOINT_
	// will populate this struct.
	EntryPoint configs.EntryPoint `envPrefix:"ENTRYPOINT_"`

	// Psql configures the optional analysis archive. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing or validation fails, an error is returned and the process is
// expected to stop. All fields are loaded with their specified defaults when
// no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks invariants the struct tags cannot express.
func (c Config) Validate() error {
	if c.HTTP.Port == 0 {
		return ErrInvalidPort
	}
	return nil
}
