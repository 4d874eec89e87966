package klog

import (
	"log/slog"

	"go.uber.org/zap"
)

// slogCallerSkip hides slog's own frames from zap's caller annotation.
const slogCallerSkip = 3

// LoggerBuilder assembles the slog logger the CLI writes its diagnostics
// with. Records are forwarded to a zap logger.
type LoggerBuilder struct {
	logger     *zap.Logger
	level      slog.Leveler
	extractors []ContextExtractor
}

func NewSlogBuilder(z *zap.Logger) *LoggerBuilder {
	if z == nil {
		panic("klog: nil zap logger")
	}
	return &LoggerBuilder{
		logger: z,
		level:  slog.LevelInfo,
	}
}

func (b *LoggerBuilder) WithLevel(level slog.Leveler) *LoggerBuilder {
	if level != nil {
		b.level = level
	}
	return b
}

// WithDebug logs everything in debug mode and only warnings and errors
// otherwise, matching the levels InitProvider configures.
func (b *LoggerBuilder) WithDebug(debug bool) *LoggerBuilder {
	if debug {
		return b.WithLevel(slog.LevelDebug)
	}
	return b.WithLevel(slog.LevelWarn)
}

// WithContextValue logs ctx.Value(key) under attrKey on every record.
func (b *LoggerBuilder) WithContextValue(key any, attrKey string) *LoggerBuilder {
	b.extractors = append(b.extractors, ContextValueExtractor(key, attrKey))
	return b
}

// WithRunID tags every record with the id stored by WithRunID as "run_id".
func (b *LoggerBuilder) WithRunID() *LoggerBuilder {
	return b.WithContextValue(RunIDKey, "run_id")
}

func (b *LoggerBuilder) Build() *slog.Logger {
	return slog.New(&zapSlogHandler{
		logger:     b.logger.WithOptions(zap.AddCallerSkip(slogCallerSkip)),
		level:      b.level,
		extractors: append([]ContextExtractor(nil), b.extractors...),
	})
}
