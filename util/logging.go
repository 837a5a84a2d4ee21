package util

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	Logger = zerolog.Nop()
)

// LogInit sends everything to stderr; stdout belongs to the voice assistant.
func LogInit(inlevel string) {
	var level zerolog.Level
	switch strings.ToLower(inlevel) {
	case "debug":
		level = zerolog.DebugLevel
	case "trace":
		level = zerolog.TraceLevel
	case "info":
		level = zerolog.InfoLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		level = zerolog.WarnLevel
	}
	Logger = zerolog.New(
		zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339},
	).Level(level).With().Timestamp().Caller().Logger()

	Logger.Debug().Msgf("logging initialized at level %v", level)
}

// EnableDebug lowers the level of the current logger to debug.
func EnableDebug() {
	if Logger.GetLevel() > zerolog.DebugLevel {
		Logger = Logger.Level(zerolog.DebugLevel)
	}
}

// RestyLogger routes resty's internal messages through Logger.
type RestyLogger struct{}

func (RestyLogger) Errorf(format string, v ...interface{}) { Logger.Error().Msgf(format, v...) }
func (RestyLogger) Warnf(format string, v ...interface{})  { Logger.Warn().Msgf(format, v...) }
func (RestyLogger) Debugf(format string, v ...interface{}) { Logger.Debug().Msgf(format, v...) }
