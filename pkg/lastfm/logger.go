package lastfm

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
	// Warnf logs a non-fatal warning with format and arguments.
	Warnf(format string, args ...interface{})
}

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger returns a Logger that writes through logger, tagged
// with component=lastfm.
func NewZerologLogger(logger zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{
		logger: logger.With().Str("component", "lastfm").Logger(),
	}
}

// Debugf implements Logger.
func (l *ZerologLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msg(fmt.Sprintf(format, args...))
}

// Warnf implements Logger.
func (l *ZerologLogger) Warnf(format string, args ...interface{}) {
	l.logger.Warn().Msg(fmt.Sprintf(format, args...))
}

// defaultLogger only surfaces warnings, through zerolog's global logger.
func defaultLogger() Logger {
	return NewZerologLogger(log.Logger.Level(zerolog.WarnLevel))
}
