package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldScriptID is the standardized structured logging key for library script identifiers.
	FieldScriptID = "script_id"
	// FieldSource is the standardized structured logging key for input document paths.
	FieldSource = "source"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests a next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
)

type contextKey int

const (
	scriptIDKey contextKey = iota
	sourceKey
)

// WithScriptID stores a library script identifier on the context.
func WithScriptID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, scriptIDKey, id)
}

// WithSource stores the input document path on the context.
func WithSource(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, sourceKey, path)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := ctx.Value(scriptIDKey).(string); ok && id != "" {
		fields = append(fields, slog.String(FieldScriptID, id))
	}
	if src, ok := ctx.Value(sourceKey).(string); ok && src != "" {
		fields = append(fields, slog.String(FieldSource, src))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	args := make([]any, len(fields))
	for i, f := range fields {
		args[i] = f
	}
	return logger.With(args...)
}
