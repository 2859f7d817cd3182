// Package expect defines sentinel errors and options for the expect
// subpackage of github.com/katalvlaran/coinwalk.
package expect

import "errors"

// ErrSubsetSize indicates K outside [1, number of coins on the board].
// The violation is rejected before any distance work begins; it would
// otherwise surface as an empty combination set and a division by zero.
var ErrSubsetSize = errors.New("expect: subset size K must satisfy 1 <= K <= number of coins")

// Option configures optional behavior of ExpectedLength.
// Use with ExpectedLength(bd, k, opts...).
type Option func(*Options)

// Options holds configurable parameters for the expectation run.
type Options struct {
	// Depth is the lookahead depth forwarded to the Approximate tour
	// solver. Default is 2.
	Depth int

	// UseMemo enables the suffix cache shared across every subset and
	// starting choice of the run. Cached suffixes may stem from
	// shallower, bounded lookahead completions, so the cache can
	// nudge individual tour lengths (and thus the mean) upward on
	// boards where such a suffix recurs at full depth; every reported
	// length remains a real achievable tour. Default is true.
	UseMemo bool

	// StartHeuristic, if true, narrows the per-subset start candidates
	// to the single coin chosen by tour.Start instead of trying every
	// coin of the subset. Cheaper, but the per-subset tour length may
	// come out higher. Default is false (all starts are tried).
	StartHeuristic bool
}

// DefaultOptions returns Options with Depth 2, memoization enabled and
// exhaustive start selection.
func DefaultOptions() Options {
	return Options{
		Depth:          2,
		UseMemo:        true,
		StartHeuristic: false,
	}
}

// WithDepth returns an Option that sets the solver lookahead depth.
// Values below 1 are clamped to 1.
func WithDepth(depth int) Option {
	return func(o *Options) {
		if depth < 1 {
			depth = 1
		}
		o.Depth = depth
	}
}

// WithoutMemo returns an Option that disables the shared suffix cache:
// more work, and on some boards a slightly lower (never below optimal)
// mean, since no shallow lookahead completions get replayed.
func WithoutMemo() Option {
	return func(o *Options) {
		o.UseMemo = false
	}
}

// WithStartHeuristic returns an Option that restricts each subset's
// start candidates to the tour.Start pick.
func WithStartHeuristic() Option {
	return func(o *Options) {
		o.StartHeuristic = true
	}
}
