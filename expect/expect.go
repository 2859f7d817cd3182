// Package expect averages best coin-collection tour lengths over every
// size-K subset of a board's coins. ExpectedLength is the public entry
// point of the coinwalk pipeline.
package expect

import (
	"math"

	"github.com/katalvlaran/coinwalk/board"
	"github.com/katalvlaran/coinwalk/pathfind"
	"github.com/katalvlaran/coinwalk/tour"
)

// ExpectedLength returns the expected number of grid steps needed to
// collect a uniformly random size-k subset of bd's coins, starting from
// the best coin of the drawn subset.
//
// For each of the C(N,k) combinations it takes the minimum Approximate
// tour length over the candidate starts (every coin of the subset, or
// only the tour.Start pick under WithStartHeuristic), then returns the
// arithmetic mean over combinations. One suffix cache is shared across
// the entire call, so costs resolved in one combination short-circuit
// identical (coin, remaining-set) states in later ones.
//
// Errors:
//   - ErrSubsetSize if k < 1 or k exceeds the coin count (checked first).
//   - pathfind.ErrNoPath (wrapped) if any coin pair is unreachable; the
//     whole computation aborts with no partial result.
//
// Complexity: C(N,k)·k solver calls after an O(N²) oracle pass; the
// caller bounds N and k to keep that tractable.
func ExpectedLength(bd *board.Board, k int, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// Stage 1 - scan coins and reject an invalid subset size up front.
	coins := bd.Coins()
	if k < 1 || k > len(coins) {
		return 0, ErrSubsetSize
	}

	// Stage 2 - one oracle pass fills every pair's distance cache.
	if err := pathfind.PopulateDistances(coins, bd); err != nil {
		return 0, err
	}

	// Stage 3 - one memo for the whole run (coin indices are globally
	// unique, so suffix states are comparable across combinations).
	solveOpts := []tour.Option{tour.WithDepth(o.Depth)}
	if o.UseMemo {
		memo, err := tour.NewMemo(len(coins))
		if err != nil {
			return 0, err
		}
		solveOpts = append(solveOpts, tour.WithMemo(memo))
	}

	// Stage 4 - average the best tour length over every combination.
	var (
		sum   float64
		count int
		err   error
	)
	subset := make([]*board.Coin, k)
	rest := make([]*board.Coin, 0, k-1)
	forEachCombination(len(coins), k, func(idx []int) {
		if err != nil {
			return // a previous combination already failed
		}
		for i, ci := range idx {
			subset[i] = coins[ci]
		}

		starts := subset
		if o.StartHeuristic {
			var pick *board.Coin
			if pick, err = tour.Start(subset); err != nil {
				return
			}
			starts = []*board.Coin{pick}
		}

		best := math.Inf(1)
		for _, start := range starts {
			rest = rest[:0]
			for _, cn := range subset {
				if !cn.Same(start) {
					rest = append(rest, cn)
				}
			}
			if l := tour.Approximate(start, rest, solveOpts...); l < best {
				best = l
			}
		}
		sum += best
		count++
	})
	if err != nil {
		return 0, err
	}

	return sum / float64(count), nil
}

// forEachCombination invokes fn with every k-element index subset of
// {0,…,n-1} in lexicographic order. The idx slice is reused between
// invocations; callers must copy it if they retain it.
// Preconditions: 1 ≤ k ≤ n.
func forEachCombination(n, k int, fn func(idx []int)) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		// Advance the rightmost position that has room to move, then
		// reset everything after it to the tightest ascending run.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
