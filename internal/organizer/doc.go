// Package organizer drives a single organize run: it resolves and checks the
// scan root, enumerates its direct children, classifies each regular file,
// and copies it into a collision-safe path under the matching category
// directory. Directories and symlinks are skipped; a failure scoped to one
// file is counted and never aborts the run. Dry-run mode computes the same
// classifications without touching the filesystem.
//
// Error wrapping and structured logging follow the same conventions as the
// rest of sortdir so the CLI can report failures uniformly.
package organizer
