package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls the zap logger built by New.
type Options struct {
	// Level is the minimum level emitted. Defaults to info.
	Level Level
	// OutputPaths are zap sink URLs or file paths. Defaults to stderr.
	OutputPaths []string
}

// New creates a production-ready structured logger configured for JSON output.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	level := opts.Level
	if level == "" {
		level = Info
	}
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())
	if len(opts.OutputPaths) > 0 {
		cfg.OutputPaths = opts.OutputPaths
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
