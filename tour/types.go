// Package tour defines sentinel errors and options for the tour
// subpackage of github.com/katalvlaran/coinwalk.
package tour

import (
	"errors"
	"math"
)

// maxCoins bounds coin counts so that a set of coin indices always fits
// one uint64 bitmask (memo keys, DP subset masks).
const maxCoins = 63

// maxExactCoins bounds Exact's coin count. The DP table holds n·2ⁿ
// float64s, so anything near the mask limit would overflow the flat
// index arithmetic long before it fit in memory; 30 coins already
// means a 256 GiB table.
const maxExactCoins = 30

// Sentinel errors for tour solvers.
var (
	// ErrNoCoins indicates an empty coin set where at least one coin is required.
	ErrNoCoins = errors.New("tour: coin set is empty")
	// ErrTooManyCoins indicates a coin count exceeding the bitmask capacity.
	ErrTooManyCoins = errors.New("tour: too many coins for a 64-bit subset mask")
	// ErrIncompleteDistances indicates a coin pair whose step distance
	// was never populated, so no finite tour exists.
	ErrIncompleteDistances = errors.New("tour: coin pair distances not populated")
)

// Option configures optional behavior of the Approximate solver.
// Use with Approximate(current, remaining, opts...).
type Option func(*Options)

// Options holds configurable parameters for the Approximate solver.
type Options struct {
	// Depth is the lookahead depth: how many recursive levels the
	// solver explores when scoring a candidate before truncating to a
	// zero-cost continuation. Depth 1 is pure greedy nearest-neighbor.
	// Default is 2.
	Depth int

	// Bound is an external upper bound used for branch-and-bound
	// pruning: a candidate whose direct step distance alone is ≥ Bound
	// is skipped outright. Default is +Inf (no external bound).
	Bound float64

	// Memo, if non-nil, is the shared suffix cache consulted and
	// written by the solver. Nil disables memoization. Note that a
	// cached suffix may have been resolved by a shallower, bounded
	// lookahead call, so attaching a memo can change (in practice,
	// raise) the returned value as well as the running time; the
	// result stays a real path cost either way. See Approximate.
	Memo *Memo
}

// DefaultOptions returns Options with:
//   - Depth 2 (one level of lookahead beyond the greedy pick)
//   - no external bound (+Inf)
//   - no memoization
func DefaultOptions() Options {
	return Options{
		Depth: 2,
		Bound: math.Inf(1),
		Memo:  nil,
	}
}

// WithDepth returns an Option that sets the lookahead depth.
// Values below 1 are clamped to 1.
func WithDepth(depth int) Option {
	return func(o *Options) {
		if depth < 1 {
			depth = 1
		}
		o.Depth = depth
	}
}

// WithBound returns an Option that sets the external pruning bound.
func WithBound(bound float64) Option {
	return func(o *Options) {
		o.Bound = bound
	}
}

// WithMemo returns an Option that attaches a shared suffix cache.
// Passing nil has no effect (memoization stays disabled).
func WithMemo(m *Memo) Option {
	return func(o *Options) {
		if m != nil {
			o.Memo = m
		}
	}
}
