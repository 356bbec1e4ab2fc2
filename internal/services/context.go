package services

import "context"

type contextKey string

const (
	runIDKey contextKey = "run_id"
	rootKey  contextKey = "scan_root"
)

// WithRunID annotates context with the organize-run correlation identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(runIDKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithScanRoot annotates context with the resolved scan root path.
func WithScanRoot(ctx context.Context, root string) context.Context {
	if root == "" {
		return ctx
	}
	return context.WithValue(ctx, rootKey, root)
}

// ScanRootFromContext extracts the scan root path if present.
func ScanRootFromContext(ctx context.Context) (string, bool) {
	if str, ok := ctx.Value(rootKey).(string); ok && str != "" {
		return str, true
	}
	return "", false
}
