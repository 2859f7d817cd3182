package tour

import (
	"math"

	"github.com/katalvlaran/coinwalk/board"
)

// BruteForce returns the minimum open-path length over every
// permutation of coins, with any coin as the start. It exists as a
// tiny-N correctness oracle for the solvers, not as a production path:
// enumeration is O(n!·n) via Heap's algorithm.
//
// Sets of fewer than two coins need no steps and return 0.
// Requires populated pair distances.
func BruteForce(coins []*board.Coin) float64 {
	if len(coins) < 2 {
		return 0
	}

	perm := append([]*board.Coin(nil), coins...)
	best := math.Inf(1)

	var walk func(k int)
	walk = func(k int) {
		if k == 1 {
			total := 0.0
			for i := 0; i < len(perm)-1; i++ {
				total += stepDist(perm[i], perm[i+1])
			}
			if total < best {
				best = total
			}

			return
		}
		for i := 0; i < k; i++ {
			walk(k - 1)
			if k%2 == 0 {
				perm[i], perm[k-1] = perm[k-1], perm[i]
			} else {
				perm[0], perm[k-1] = perm[k-1], perm[0]
			}
		}
	}
	walk(len(perm))

	return best
}
