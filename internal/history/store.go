package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"sortdir/internal/classify"
	"sortdir/internal/config"
	"sortdir/internal/services"
)

// Run is one recorded organize run.
type Run struct {
	ID         int64
	RunID      string
	Root       string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	Counts     map[classify.Category]int
}

// Processed returns the number of classified entries, excluding Errors.
func (r Run) Processed() int {
	total := 0
	for category, count := range r.Counts {
		if category == classify.Errors {
			continue
		}
		total += count
	}
	return total
}

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and ensures the
// schema exists.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "history", "ensure directories", "failed to create log directory", err)
	}

	dbPath := cfg.HistoryPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "history", "open database", dbPath, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    root TEXT NOT NULL,
    dry_run INTEGER NOT NULL DEFAULT 0,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    images INTEGER NOT NULL DEFAULT 0,
    documents INTEGER NOT NULL DEFAULT 0,
    videos INTEGER NOT NULL DEFAULT 0,
    audio INTEGER NOT NULL DEFAULT 0,
    archives INTEGER NOT NULL DEFAULT 0,
    code INTEGER NOT NULL DEFAULT 0,
    others INTEGER NOT NULL DEFAULT 0,
    errors INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

func (s *Store) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Record inserts one finished run.
func (s *Store) Record(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            run_id, root, dry_run, started_at, finished_at,
            images, documents, videos, audio, archives, code, others, errors
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.Root,
		boolToInt(run.DryRun),
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.Counts[classify.Images],
		run.Counts[classify.Documents],
		run.Counts[classify.Videos],
		run.Counts[classify.Audio],
		run.Counts[classify.Archives],
		run.Counts[classify.Code],
		run.Counts[classify.Others],
		run.Counts[classify.Errors],
	)
	if err != nil {
		return services.Wrap(services.ErrTransient, "history", "record run", "failed to insert run", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, root, dry_run, started_at, finished_at,
            images, documents, videos, audio, archives, code, others, errors
        FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run                  Run
			dryRun               int
			startedAt, finishedAt string
			counts               [8]int
		)
		if err := rows.Scan(
			&run.ID, &run.RunID, &run.Root, &dryRun, &startedAt, &finishedAt,
			&counts[0], &counts[1], &counts[2], &counts[3], &counts[4], &counts[5], &counts[6], &counts[7],
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.DryRun = dryRun != 0
		if ts, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			run.StartedAt = ts
		}
		if ts, err := time.Parse(time.RFC3339Nano, finishedAt); err == nil {
			run.FinishedAt = ts
		}
		run.Counts = map[classify.Category]int{
			classify.Images:    counts[0],
			classify.Documents: counts[1],
			classify.Videos:    counts[2],
			classify.Audio:     counts[3],
			classify.Archives:  counts[4],
			classify.Code:      counts[5],
			classify.Others:    counts[6],
			classify.Errors:    counts[7],
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
