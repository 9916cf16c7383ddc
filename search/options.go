package search

import (
	"io"
	"log/slog"
	"time"
)

// Default ceilings applied when no option overrides them.
const (
	DefaultMaxExpansions = 1_000_000
	DefaultTimeLimit     = time.Hour
	DefaultMaxDepth      = 10_000
)

// Options configures an engine invocation.
//
// MaxExpansions – expansion ceiling; a run is cut off once Expanded reaches it.
// TimeLimit     – wall-clock ceiling measured from the start of the run.
// MaxDepth      – deepest ceiling tried by iterative deepening; ignored elsewhere.
// Clock         – time source for the budget monitor and elapsed time.
// Logger        – receives Debug records for terminal outcomes and depth iterations.
type Options struct {
	MaxExpansions int
	TimeLimit     time.Duration
	MaxDepth      int
	Clock         func() time.Time
	Logger        *slog.Logger
}

// Option represents a functional option for configuring an engine.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - MaxExpansions: DefaultMaxExpansions
//   - TimeLimit:     DefaultTimeLimit
//   - MaxDepth:      DefaultMaxDepth
//   - Clock:         time.Now
//   - Logger:        a logger that discards everything
func DefaultOptions() Options {
	return Options{
		MaxExpansions: DefaultMaxExpansions,
		TimeLimit:     DefaultTimeLimit,
		MaxDepth:      DefaultMaxDepth,
		Clock:         time.Now,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Apply returns DefaultOptions with opts applied in order.
func Apply(opts ...Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxExpansions sets the expansion ceiling. Zero cuts every run off
// before its first pop. Panics with ErrBadMaxExpansions if n < 0.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithTimeLimit sets the wall-clock ceiling. Panics with ErrBadTimeLimit if d < 0.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadTimeLimit.Error())
		}
		o.TimeLimit = d
	}
}

// WithMaxDepth sets the largest depth ceiling iterative deepening will try.
// Panics with ErrBadMaxDepth if n < 0.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxDepth.Error())
		}
		o.MaxDepth = n
	}
}

// WithClock replaces the time source. A nil clock is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
