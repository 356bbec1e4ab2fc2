package organizer

import (
	"time"

	"sortdir/internal/classify"
)

// Counters tracks how many entries landed in each category during one run,
// plus the Errors pseudo-category. Never persisted across runs.
type Counters map[classify.Category]int

// NewCounters returns counters zeroed for every known category so the final
// report always lists the full fixed set.
func NewCounters() Counters {
	counts := make(Counters, len(classify.Order))
	for _, category := range classify.Order {
		counts[category] = 0
	}
	return counts
}

// Processed returns the number of classified entries, excluding Errors.
func (c Counters) Processed() int {
	total := 0
	for category, count := range c {
		if category == classify.Errors {
			continue
		}
		total += count
	}
	return total
}

// Summary describes one finished organize run.
type Summary struct {
	RunID      string
	Root       string
	DryRun     bool
	StartedAt  time.Time
	FinishedAt time.Time
	Counts     Counters
}
