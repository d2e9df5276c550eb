package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// Logger is the narrow logging contract used by callers that only need to
// report a message at a level.
type Logger interface {
	Log(message any, level Level)
}

type zapLogger struct {
	logger *zap.Logger
}

// NewZap adapts a zap logger to Logger. String messages and errors become
// the log message; any other value is attached as a "message" field.
func NewZap(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger}
}

func (l *zapLogger) Log(message any, level Level) {
	var (
		msg    string
		fields []zap.Field
	)
	switch m := message.(type) {
	case string:
		msg = m
	case error:
		msg = m.Error()
		fields = append(fields, zap.Error(m))
	case fmt.Stringer:
		msg = m.String()
	default:
		msg = fmt.Sprintf("%T", message)
		fields = append(fields, zap.Any("message", message))
	}
	if level == Critical {
		fields = append(fields, zap.String("severity", string(Critical)))
	}

	if ce := l.logger.Check(level.zapLevel(), msg); ce != nil {
		ce.Write(fields...)
	}
}

type nopLogger struct{}

func (nopLogger) Log(any, Level) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}
