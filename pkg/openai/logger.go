package openai

import (
	"context"
	"log/slog"
)

// SlogLogger adapts a *slog.Logger to Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a Logger writing to l, or to slog.Default when l is nil.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		l = slog.Default()
	}

	return &SlogLogger{logger: l}
}

func (s *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	s.log(slog.LevelDebug, msg, fields)
}

func (s *SlogLogger) Info(msg string, fields map[string]interface{}) {
	s.log(slog.LevelInfo, msg, fields)
}

func (s *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	s.log(slog.LevelWarn, msg, fields)
}

func (s *SlogLogger) Error(msg string, fields map[string]interface{}) {
	s.log(slog.LevelError, msg, fields)
}

func (s *SlogLogger) log(level slog.Level, msg string, fields map[string]interface{}) {
	attrs := make([]slog.Attr, 0, len(fields))
	for key, value := range fields {
		attrs = append(attrs, slog.Any(key, value))
	}

	s.logger.LogAttrs(context.Background(), level, msg, attrs...)
}
