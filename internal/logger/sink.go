package logger

import (
	"log/slog"

	"github.com/sevigo/spell-warden/internal/core"
)

// ErrorFunc adapts a plain function to core.ErrorLogger.
type ErrorFunc func(message string)

func (f ErrorFunc) LogError(message string) { f(message) }

// ErrorSink forwards resolution failures to a slog logger at error level.
type ErrorSink struct {
	logger *slog.Logger
}

var _ core.ErrorLogger = (*ErrorSink)(nil)

func NewErrorSink(logger *slog.Logger) *ErrorSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorSink{logger: logger.With("component", "resolver")}
}

func (s *ErrorSink) LogError(message string) {
	s.logger.Error(message)
}
