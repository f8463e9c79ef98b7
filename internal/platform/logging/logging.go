// Package logging builds the service's slog logger and carries the
// request-scoped child logger through context.
//
// The HTTP middleware stores a child logger holding request_id and
// correlation_id with WithLogger. The todo service and the storage adapter
// log through FromContextOr so that every line about a request carries those
// IDs, and fall back to their injected logger outside a request (startup,
// migrations, tests).
//
// Failure lines share one shape:
//
//	logging.FromContextOr(ctx, logger).LogAttrs(ctx, slog.LevelError,
//	    "todo operation failed",
//	    logging.OperationAttrs("UpdateTodo", id, slog.Any("error", err))...,
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

type contextKey struct{}

// New creates the service logger writing to w. Level is one of debug, info,
// warn or error in any case, and anything else means info. Format "text"
// selects logfmt-style output and every other value JSON. Debug adds source
// locations. Sensitive attributes are masked by the redaction layer in both
// formats.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, FormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored in ctx, or fallback when ctx has
// none.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return fallback
}

// OperationAttrs returns the attributes that identify a todo operation in a
// log line: the operation name, then todo_id when id is non-zero, then
// extra.
func OperationAttrs(op string, id int64, extra ...slog.Attr) []slog.Attr {
	attrs := make([]slog.Attr, 0, 2+len(extra))
	attrs = append(attrs, slog.String("operation", op))
	if id != 0 {
		attrs = append(attrs, slog.Int64("todo_id", id))
	}
	return append(attrs, extra...)
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
