package application

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/eugenenazirov/confload/internal/logging"
)

// Settings configures the tool itself.
// Precedence: CLI flags > Environment variables > Defaults
type Settings struct {
	LogLevel  string   `env:"CONFLOAD_LOG_LEVEL" envDefault:"info"`
	LogOutput []string `env:"CONFLOAD_LOG_OUTPUT" envSeparator:"," envDefault:"stderr"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("error getting env settings: %w", err)
	}
	return s, nil
}

// LoggingOptions converts the settings into logger options.
func (s Settings) LoggingOptions() (logging.Options, error) {
	level, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return logging.Options{}, err
	}
	return logging.Options{Level: level, OutputPaths: s.LogOutput}, nil
}
