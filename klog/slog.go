package klog

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapSlogHandler forwards slog records to zap, flattening groups into
// dotted keys.
type zapSlogHandler struct {
	logger     *zap.Logger
	level      slog.Leveler
	fields     []zap.Field
	groups     []string
	extractors []ContextExtractor
}

func (h *zapSlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *zapSlogHandler) Handle(ctx context.Context, record slog.Record) error {
	fields := make([]zap.Field, 0, len(h.fields)+record.NumAttrs()+len(h.extractors))
	fields = append(fields, h.fields...)
	for _, extractor := range h.extractors {
		for _, attr := range extractor(ctx) {
			fields = appendAttr(fields, h.groups, attr)
		}
	}
	record.Attrs(func(attr slog.Attr) bool {
		fields = appendAttr(fields, h.groups, attr)
		return true
	})

	h.logger.Log(toZapLevel(record.Level), record.Message, fields...)
	return nil
}

func (h *zapSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.fields = append([]zap.Field(nil), h.fields...)
	for _, attr := range attrs {
		clone.fields = appendAttr(clone.fields, h.groups, attr)
	}
	return &clone
}

func (h *zapSlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func appendAttr(fields []zap.Field, groups []string, attr slog.Attr) []zap.Field {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return fields
	}

	if attr.Value.Kind() == slog.KindGroup {
		child := groups
		if attr.Key != "" {
			child = append(append([]string(nil), groups...), attr.Key)
		}
		for _, a := range attr.Value.Group() {
			fields = appendAttr(fields, child, a)
		}
		return fields
	}

	key := fullKey(groups, attr.Key)
	v := attr.Value
	switch v.Kind() {
	case slog.KindBool:
		return append(fields, zap.Bool(key, v.Bool()))
	case slog.KindDuration:
		return append(fields, zap.Duration(key, v.Duration()))
	case slog.KindFloat64:
		return append(fields, zap.Float64(key, v.Float64()))
	case slog.KindInt64:
		return append(fields, zap.Int64(key, v.Int64()))
	case slog.KindUint64:
		return append(fields, zap.Uint64(key, v.Uint64()))
	case slog.KindString:
		return append(fields, zap.String(key, v.String()))
	case slog.KindTime:
		return append(fields, zap.Time(key, v.Time()))
	}

	switch a := v.Any().(type) {
	case error:
		return append(fields, zap.NamedError(key, a))
	case []byte:
		return append(fields, zap.ByteString(key, a))
	default:
		return append(fields, zap.Any(key, a))
	}
}

func fullKey(groups []string, key string) string {
	if key == "" {
		key = "value"
	}
	if len(groups) == 0 {
		return key
	}
	return strings.Join(groups, ".") + "." + key
}

func toZapLevel(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
