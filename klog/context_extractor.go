package klog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type ContextExtractor func(context.Context) []slog.Attr

func ContextValueExtractor(key any, attrKey string) ContextExtractor {
	if attrKey == "" {
		attrKey = fmt.Sprint(key)
	}
	return func(ctx context.Context) []slog.Attr {
		if ctx == nil {
			return nil
		}
		val := ctx.Value(key)
		if val == nil {
			return nil
		}
		return []slog.Attr{slog.Any(attrKey, val)}
	}
}

type runIDKey struct{}

// RunIDKey is the context key holding the id of one CLI invocation.
var RunIDKey = runIDKey{}

// WithRunID stores a fresh random id in ctx so every log line of one
// invocation can be correlated.
func WithRunID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, RunIDKey, id), id
}

// RunID returns the id stored by WithRunID, or "".
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)
	return id
}
