// Package testsupport provides shared fixtures for sortdir tests: temp-dir
// backed configs, quiet loggers, and sized file writers.
package testsupport

import (
	"log/slog"
	"path/filepath"
	"testing"

	"sortdir/internal/config"
	"sortdir/internal/logging"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithVerifiedCopies enables sha256 copy verification on the test config.
func WithVerifiedCopies() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.VerifyCopies = true
	}
}

// WithCollisionCap overrides the destination probe cap on the test config.
func WithCollisionCap(attempts int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organize.MaxCollisionAttempts = attempts
	}
}

// NewLogger returns a logger writing JSON records to a file under the test's
// temp directory so assertions never race with stdout.
func NewLogger(t testing.TB) *slog.Logger {
	t.Helper()

	logger, err := logging.New(logging.Options{
		Level:       "debug",
		Format:      "json",
		OutputPaths: []string{filepath.Join(t.TempDir(), "sortdir.log")},
	})
	if err != nil {
		t.Fatalf("build test logger: %v", err)
	}
	return logger
}
