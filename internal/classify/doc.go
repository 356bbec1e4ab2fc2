// Package classify maps file names to the fixed sortdir categories.
//
// The category table is seeded once at startup and treated as read-only:
// every category owns a set of lowercase extensions, and classification is a
// total function that falls back to Others when no set claims the extension.
// The table order is fixed so classification stays deterministic even if a
// future edit were to duplicate an extension across categories.
package classify
