package services_test

import (
	"context"
	"testing"

	"sortdir/internal/services"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := services.WithRunID(context.Background(), "run-123")
	if id, ok := services.RunIDFromContext(ctx); !ok || id != "run-123" {
		t.Fatalf("expected run-123, got %q (ok=%v)", id, ok)
	}
	if _, ok := services.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
	if same := services.WithRunID(context.Background(), ""); same != context.Background() {
		t.Fatal("empty run id should not allocate a new context")
	}
}

func TestScanRootRoundTrip(t *testing.T) {
	ctx := services.WithScanRoot(context.Background(), "/tmp/downloads")
	if root, ok := services.ScanRootFromContext(ctx); !ok || root != "/tmp/downloads" {
		t.Fatalf("expected /tmp/downloads, got %q (ok=%v)", root, ok)
	}
	if _, ok := services.ScanRootFromContext(context.Background()); ok {
		t.Fatal("expected no scan root on empty context")
	}
}
