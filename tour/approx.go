package tour

import (
	"math"

	"github.com/katalvlaran/coinwalk/board"
)

// Approximate estimates the total step distance needed to visit every
// coin in remaining, starting at current, with a pruned, memoized
// greedy nearest-neighbor walk with bounded lookahead.
//
// Per hop, every remaining coin is scored as
//
//	direct step distance + estimated continuation cost,
//
// where continuation is evaluated recursively (depth−1) while depth > 1
// and more than one coin remains, and assumed free otherwise. A
// candidate whose direct distance alone already meets or exceeds the
// current pruning bound is skipped outright. The cheapest candidate is
// committed and the walk repeats until remaining is empty.
//
// The result is an upper bound on the optimum: it is never less than
// Exact(current, remaining) on the same inputs. With WithMemo, fully
// resolved suffixes are cached keyed by (coin, remaining-set) and reused
// whenever the identical suffix state recurs — including from other
// subsets in the same run.
//
// Attaching a memo can change the returned value, not just the running
// time: lookahead sub-calls run at depth−1 under a pruning bound, and
// the suffix entries they write record those shallower completions.
// When the main walk later hits such an entry it replays the shallower
// completion instead of searching on at full depth, which in the
// observed cases raises the result (see the drift test for a pinned
// instance). Every cached value is still the cost of a real walkable
// path, so the upper-bound guarantee above holds with or without a
// memo.
//
// Cost grows roughly with the branching factor to the power of the
// lookahead depth per hop, mitigated by pruning and memoization.
// remaining is not modified.
func Approximate(current *board.Coin, remaining []*board.Coin, opts ...Option) float64 {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	// Private working copy: the walk consumes its slice in place.
	work := append([]*board.Coin(nil), remaining...)

	return walkNearest(current, work, o.Depth, o.Bound, o.Memo)
}

// walkNearest is the recursive core of Approximate. It owns (and
// consumes) the remaining slice. bound applies to candidate pruning in
// this call only; recursive continuation estimates receive the best
// local score found so far as their bound.
func walkNearest(current *board.Coin, remaining []*board.Coin, depth int, bound float64, memo *Memo) float64 {
	distance := 0.0
	origin := current
	var originSet []*board.Coin
	if memo != nil {
		// Snapshot the full suffix set: the entry written on completion
		// is keyed by the original state, not any intermediate one.
		originSet = append([]*board.Coin(nil), remaining...)
	}

	for len(remaining) > 0 {
		if memo != nil {
			if suffix, ok := memo.Get(current, remaining); ok {
				// Known suffix: short-circuit without writing anything.
				return distance + suffix
			}
		}

		minIdx := 0
		minDirect := math.Inf(1)
		minScore := math.Inf(1)
		for idx, cand := range remaining {
			direct := stepDist(current, cand)
			if direct >= bound {
				continue // cannot beat the bound even with a free continuation
			}

			continuation := 0.0
			if depth > 1 && len(remaining) > 1 {
				rest := make([]*board.Coin, 0, len(remaining)-1)
				rest = append(rest, remaining[:idx]...)
				rest = append(rest, remaining[idx+1:]...)
				continuation = walkNearest(cand, rest, depth-1, minScore, memo)
			}

			if score := direct + continuation; score < minScore {
				minScore = score
				minDirect = direct
				minIdx = idx
			}
		}

		// Commit the chosen hop. If every candidate was pruned away the
		// accumulated distance becomes +Inf, which propagates upward and
		// loses every comparison there.
		distance += minDirect
		current = remaining[minIdx]
		remaining = append(remaining[:minIdx], remaining[minIdx+1:]...)
	}

	if memo != nil {
		memo.Set(origin, originSet, distance)
	}

	return distance
}
