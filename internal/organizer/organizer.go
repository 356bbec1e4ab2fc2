package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sortdir/internal/classify"
	"sortdir/internal/config"
	"sortdir/internal/fileutil"
	"sortdir/internal/logging"
	"sortdir/internal/services"
)

// EventKind discriminates per-entry notifications emitted during a run.
type EventKind int

const (
	EventCopied EventKind = iota
	EventWouldCopy
	EventError
)

// Event reports the outcome for a single directory entry.
type Event struct {
	Kind        EventKind
	Source      string
	Destination string
	Category    classify.Category
	Err         error
}

// Options controls a single organize run.
type Options struct {
	DryRun bool
	// OnEvent, when set, receives one call per processed entry in walk order.
	OnEvent func(Event)
}

// Organizer sorts the direct children of a scan root into category
// directories.
type Organizer struct {
	logger               *slog.Logger
	copyFile             func(src, dst string) error
	maxCollisionAttempts int
}

// New constructs an organizer from configuration. The copy primitive is
// chosen by organize.verify_copies.
func New(cfg *config.Config, logger *slog.Logger) *Organizer {
	copyFn := fileutil.CopyFile
	attempts := config.Default().Organize.MaxCollisionAttempts
	if cfg != nil {
		if cfg.Organize.VerifyCopies {
			copyFn = fileutil.CopyFileVerified
		}
		attempts = cfg.Organize.MaxCollisionAttempts
	}
	return &Organizer{
		logger:               logging.NewComponentLogger(logger, "organizer"),
		copyFile:             copyFn,
		maxCollisionAttempts: attempts,
	}
}

// ResolveRoot canonicalizes the scan target and confirms it is a directory.
func ResolveRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "organizing", "resolve root", fmt.Sprintf("%q is not a valid directory", path), err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "organizing", "resolve root", fmt.Sprintf("%q is not a valid directory", path), err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "organizing", "resolve root", fmt.Sprintf("%q is not a valid directory", path), err)
	}
	if !info.IsDir() {
		return "", services.Wrap(services.ErrValidation, "organizing", "resolve root", fmt.Sprintf("%q is not a directory", resolved), nil)
	}
	return filepath.Clean(resolved), nil
}

// Run enumerates the direct children of root and sorts every regular,
// non-symlink entry into its category directory. root must already be
// resolved via ResolveRoot. The returned error is fatal; failures scoped to
// a single entry are absorbed into the Errors counter instead.
func (o *Organizer) Run(ctx context.Context, root string, opts Options) (*Summary, error) {
	logger := logging.WithContext(ctx, o.logger)

	summary := &Summary{
		Root:      root,
		DryRun:    opts.DryRun,
		StartedAt: time.Now().UTC(),
		Counts:    NewCounters(),
	}
	if id, ok := services.RunIDFromContext(ctx); ok {
		summary.RunID = id
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "organizing", "read directory", fmt.Sprintf("failed to enumerate %s", root), err)
	}

	logger.Info("scan started",
		logging.Bool("dry_run", opts.DryRun),
		logging.Int("entries", len(entries)),
	)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		o.processEntry(root, entry, opts, summary, logger)
	}

	summary.FinishedAt = time.Now().UTC()
	logger.Info("scan finished",
		logging.Int("processed", summary.Counts.Processed()),
		logging.Int("errors", summary.Counts[classify.Errors]),
		logging.Duration("elapsed", summary.FinishedAt.Sub(summary.StartedAt)),
	)
	return summary, nil
}

func (o *Organizer) processEntry(root string, entry os.DirEntry, opts Options, summary *Summary, logger *slog.Logger) {
	name := entry.Name()
	source := filepath.Join(root, name)

	info, err := entry.Info()
	if err != nil {
		o.recordError(summary, opts, Event{Kind: EventError, Source: source, Err: err})
		logger.Warn("could not read entry metadata", logging.String("entry", name), logging.Error(err))
		return
	}
	if info.IsDir() {
		return
	}
	if info.Mode()&os.ModeSymlink != 0 {
		// Never follow links out of the scan root or duplicate their targets.
		return
	}

	category := classify.Classify(name)

	if opts.DryRun {
		destDir := filepath.Join(root, string(category))
		summary.Counts[category]++
		o.emit(opts, Event{Kind: EventWouldCopy, Source: source, Destination: destDir, Category: category})
		logger.Debug("would copy entry",
			logging.String("entry", name),
			logging.String(logging.FieldCategory, string(category)),
		)
		return
	}

	destination, err := o.resolveDestination(root, category, name)
	if err != nil {
		o.recordError(summary, opts, Event{Kind: EventError, Source: source, Category: category, Err: err})
		logger.Warn("failed to resolve destination",
			logging.String("entry", name),
			logging.String(logging.FieldCategory, string(category)),
			logging.Error(err),
		)
		return
	}

	if err := o.copyFile(source, destination); err != nil {
		o.recordError(summary, opts, Event{Kind: EventError, Source: source, Destination: destination, Category: category, Err: err})
		logger.Warn("failed to copy entry",
			logging.String("entry", name),
			logging.String(logging.FieldCategory, string(category)),
			logging.Error(err),
		)
		return
	}

	summary.Counts[category]++
	o.emit(opts, Event{Kind: EventCopied, Source: source, Destination: destination, Category: category})
	logger.Debug("copied entry",
		logging.String("entry", name),
		logging.String(logging.FieldCategory, string(category)),
		logging.String("destination", destination),
	)
}

func (o *Organizer) recordError(summary *Summary, opts Options, event Event) {
	summary.Counts[classify.Errors]++
	o.emit(opts, event)
}

func (o *Organizer) emit(opts Options, event Event) {
	if opts.OnEvent != nil {
		opts.OnEvent(event)
	}
}
