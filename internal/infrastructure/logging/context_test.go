package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/tagkit/internal/ports"
)

func TestEnsureCorrelationIDGeneratesOnce(t *testing.T) {
	ctx, id := EnsureCorrelationID(context.Background())
	if id == "" {
		t.Fatal("expected a generated correlation id")
	}
	if got := ports.GetCorrelationID(ctx); got != id {
		t.Fatalf("expected context to carry %q, got %q", id, got)
	}

	again, sameID := EnsureCorrelationID(ctx)
	if sameID != id || again != ctx {
		t.Fatalf("expected existing id %q to be kept, got %q", id, sameID)
	}
}

func TestEnsureCorrelationIDNilContext(t *testing.T) {
	//nolint:staticcheck // SA1012
	ctx, id := EnsureCorrelationID(nil)
	if ctx == nil || id == "" {
		t.Fatal("expected a background context with a correlation id")
	}
}

func TestScopedTagsContextAndLogger(t *testing.T) {
	var buf bytes.Buffer
	base, err := New(Options{Writer: &buf, Formatter: cblog.JSONFormatter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, logger := Scoped(context.Background(), "corr-7", base, "command", "command.render")
	logger.Info(ctx, "rendered")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log output: %v", err)
	}
	if entry["correlation_id"] != "corr-7" {
		t.Fatalf("expected correlation_id corr-7, got %v", entry["correlation_id"])
	}
	if entry["command"] != "command.render" {
		t.Fatalf("expected command field, got %v", entry["command"])
	}
}

func TestScopedWithoutIDOrLogger(t *testing.T) {
	parent := context.Background()
	ctx, logger := Scoped(parent, "", nil)
	if ctx != parent {
		t.Fatal("expected context to be unchanged without an id")
	}
	if logger == nil {
		t.Fatal("expected a no-op logger")
	}
	logger.Info(ctx, "discarded")
}
