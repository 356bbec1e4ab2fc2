// Package services holds cross-cutting helpers shared by sortdir components:
// sentinel error markers with stage-aware wrapping, and context annotations
// that carry the run identifier into structured logs and the history store.
package services
