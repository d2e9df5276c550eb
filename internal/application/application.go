package application

import (
	"fmt"
	"os"

	"github.com/eugenenazirov/confload/internal/config"
	"github.com/eugenenazirov/confload/internal/logging"
)

// Options selects and parameterises a configuration source.
type Options struct {
	Source     config.SourceKind
	SchemaFile string
	Prefix     string
	File       string
	Format     config.Format
	// Env overrides the environment provider. Defaults to a snapshot of the
	// process environment.
	Env config.Environment
}

// Open loads configuration as described by opts. Failures are logged at
// error level and returned unchanged so callers can still inspect them.
func Open(opts Options, logger logging.Logger) (*config.Config, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	hints, err := buildHints(opts)
	if err != nil {
		logger.Log(err, logging.Error)
		return nil, err
	}

	cfg, err := config.Open(opts.Source, hints)
	if err != nil {
		logger.Log(fmt.Errorf("load %s config: %w", opts.Source, err), logging.Error)
		return nil, err
	}

	logger.Log(fmt.Sprintf("loaded %d sections from %s source", cfg.Len(), cfg.Source()), logging.Debug)
	return cfg, nil
}

func buildHints(opts Options) (config.Hints, error) {
	hints := config.Hints{
		Prefix: opts.Prefix,
		Path:   opts.File,
		Format: opts.Format,
		Env:    opts.Env,
	}

	if opts.Source == config.SourceEnv {
		if hints.Env == nil {
			hints.Env = config.SnapshotEnvironment()
		}
		if opts.SchemaFile != "" {
			schema, err := readSchema(opts.SchemaFile)
			if err != nil {
				return config.Hints{}, err
			}
			hints.Schema = schema
		}
	}
	return hints, nil
}

func readSchema(path string) (*config.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.FileError{Path: path, Reason: "schema file not readable", Err: err}
	}
	schema, err := config.ParseSchema(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}
