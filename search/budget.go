package search

import "time"

// Budget is the resource monitor shared by all engines. It holds no run
// state: callers pass the run's start time and current expansion count.
type Budget struct {
	MaxExpansions int
	TimeLimit     time.Duration
	Clock         func() time.Time
}

// NewBudget builds a Budget from the ceilings in opts.
func NewBudget(opts Options) Budget {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	return Budget{
		MaxExpansions: opts.MaxExpansions,
		TimeLimit:     opts.TimeLimit,
		Clock:         clock,
	}
}

// WithinLimits reports whether another node may be popped. It returns false
// once expanded reaches MaxExpansions or the time since start reaches TimeLimit.
func (b Budget) WithinLimits(start time.Time, expanded int) bool {
	if expanded >= b.MaxExpansions {
		return false
	}
	if b.Clock().Sub(start) >= b.TimeLimit {
		return false
	}

	return true
}
