package logging

import (
	"context"

	"github.com/alexisbeaulieu97/tagkit/internal/ports"
)

// EnsureCorrelationID returns ctx carrying a correlation id. An id already
// present in ctx is kept; otherwise a new one is generated. A nil ctx is
// treated as context.Background().
func EnsureCorrelationID(ctx context.Context) (context.Context, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		return ctx, id
	}
	id := ports.GenerateCorrelationID()
	return ports.WithCorrelationID(ctx, id), id
}

// Scoped tags ctx with id and returns a child of logger carrying fields.
// An empty id leaves ctx untouched and a nil logger is replaced by a no-op.
func Scoped(ctx context.Context, id string, logger ports.Logger, fields ...interface{}) (context.Context, ports.Logger) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id != "" {
		ctx = ports.WithCorrelationID(ctx, id)
	}
	if logger == nil {
		logger = NewNoOpLogger()
	}
	if len(fields) > 0 {
		logger = logger.With(fields...)
	}
	return ctx, logger
}
