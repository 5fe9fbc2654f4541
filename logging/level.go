package logging

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Level is an enum of log levels. Its value can be `DEBUG`, `INFO`, `WARN` or `ERROR`.
type Level int

// Levels share zap's ordering so that they convert by offset.
const (
	DEBUG Level = iota - 1
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "Debug",
	INFO:  "Info",
	WARN:  "Warn",
	ERROR: "Error",
}

func (level Level) String() string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return "Level(" + zapcore.Level(level).String() + ")"
}

// LevelFromString parses a case-insensitive level name, as passed to --log-level. "warning" is accepted for WARN.
func LevelFromString(inp string) (Level, error) {
	name := strings.ToLower(inp)
	if name == "warning" {
		return WARN, nil
	}
	for level, levelName := range levelNames {
		if strings.ToLower(levelName) == name {
			return level, nil
		}
	}
	return DEBUG, errors.Errorf("unknown log level %q, must be one of debug, info, warn or error", inp)
}

// AsZap converts the Level to a `zapcore.Level`.
func (level Level) AsZap() zapcore.Level {
	return zapcore.Level(level)
}

// LevelFromZap converts a `zapcore.Level` to a Level. Levels more severe than error map to ERROR.
func LevelFromZap(level zapcore.Level) Level {
	switch {
	case level <= zapcore.DebugLevel:
		return DEBUG
	case level >= zapcore.ErrorLevel:
		return ERROR
	default:
		return Level(level)
	}
}
