package tour

import (
	"math"

	"github.com/katalvlaran/coinwalk/board"
)

// pair is an unordered coin pair tracked by the starting heuristic.
type pair struct {
	a, b *board.Coin
}

// contains reports whether cn is an endpoint of the pair (cell identity).
func (p pair) contains(cn *board.Coin) bool {
	return cn.Same(p.a) || cn.Same(p.b)
}

// Start picks a promising tour-start coin from the given set.
//
// It scans all unordered pairs for the globally minimal step distance,
// keeping every pair achieving it in first-seen order. Among the
// endpoints of those minimal pairs it returns the coin whose minimum
// distance to any coin outside its own pair is largest (first coin to
// reach the maximum wins ties).
//
// Rationale: such a coin is cheap to pair with one neighbor but
// expensive to reach from everything else, so deferring it would
// inflate the tour; visiting it first spends its one cheap edge.
//
// For example, given edges
//
//	[A,B,1] [A,C,5] [A,D,2] [B,C,7] [B,D,6] [C,D,4]
//
// the sole minimal pair is (A,B); B is returned because its cheapest
// way to reach a coin outside the pair costs 6, against A's 2.
//
// Returns ErrNoCoins on an empty set; a single coin is returned as-is.
// Requires populated pair distances. Complexity: O(N²) scans.
func Start(coins []*board.Coin) (*board.Coin, error) {
	if len(coins) == 0 {
		return nil, ErrNoCoins
	}
	if len(coins) == 1 {
		return coins[0], nil
	}

	// 1. Collect every pair achieving the global minimum distance.
	smallest := math.Inf(1)
	var minimal []pair
	for i, ca := range coins {
		for _, cb := range coins[i+1:] {
			switch d := stepDist(ca, cb); {
			case d < smallest:
				smallest = d
				minimal = []pair{{a: ca, b: cb}}
			case d == smallest:
				minimal = append(minimal, pair{a: ca, b: cb})
			}
		}
	}

	// 2. Among minimal-pair endpoints, maximize the cheapest escape to
	// a coin outside that endpoint's own pair. Strict-greater update:
	// the first coin reaching the maximum wins.
	best := minimal[0].a
	bestCost := 0.0
	for _, p := range minimal {
		for _, cn := range []*board.Coin{p.a, p.b} {
			escape := math.Inf(1)
			for _, other := range coins {
				if p.contains(other) {
					continue
				}
				if c := stepDist(cn, other); c < escape {
					escape = c
				}
			}
			if escape > bestCost {
				bestCost = escape
				best = cn
			}
		}
	}

	return best, nil
}
