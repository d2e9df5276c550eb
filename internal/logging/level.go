package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is the severity of a logged message.
type Level string

const (
	Debug    Level = "debug"
	Info     Level = "info"
	Warning  Level = "warning"
	Error    Level = "error"
	Critical Level = "critical"
)

// ParseLevel accepts a level name in any case. "warn" is an alias of warning.
func ParseLevel(name string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(name))); l {
	case Debug, Info, Warning, Error, Critical:
		return l, nil
	case "warn":
		return Warning, nil
	}
	return "", fmt.Errorf("unknown log level %q", name)
}

// zapLevel maps to the closest zap level. Critical shares zap's error level;
// Logger implementations mark it with a severity field.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Debug:
		return zapcore.DebugLevel
	case Warning:
		return zapcore.WarnLevel
	case Error, Critical:
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}
