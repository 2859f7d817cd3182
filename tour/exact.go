package tour

import (
	"math"

	"github.com/katalvlaran/coinwalk/board"
)

// Exact computes the true minimum total step distance of an open path
// that begins at start and visits every coin in coins exactly once, in
// any order, using a Held–Karp style bitmask dynamic program. start
// itself must not appear in coins.
//
// State (S, j) means "visited exactly the coins in subset mask S,
// currently at coins[j]"; dp is a flat array indexed mask*n + j.
// Base cases dp[{j}][j] = dist(start, j); transition
// dp[S][j] = min over k ∈ S\{j} of dp[S\{j}][k] + dist(k, j);
// answer = min over j of dp[Full][j]. There is no closing edge back to
// start: tours are open paths.
//
// Returns 0 for an empty coin set, ErrTooManyCoins when len(coins)
// exceeds 30 (the n·2ⁿ table would not fit in memory, nor would the
// flat mask·n indexing stay in int range anywhere near the 63-coin
// mask limit), and ErrIncompleteDistances when some required pair
// distance is missing so no finite path exists.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// Exponential: practical only for small coin counts (n ≲ 16).
func Exact(start *board.Coin, coins []*board.Coin) (float64, error) {
	n := len(coins)
	if n == 0 {
		return 0, nil
	}
	if n > maxExactCoins {
		return 0, ErrTooManyCoins
	}

	size := 1 << uint(n)
	full := size - 1

	// --- 1. Distance matrix over the coin set, +Inf for missing pairs ---
	dist := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue // self-distance stays 0
			}
			dist[i*n+j] = stepDist(coins[i], coins[j])
		}
	}

	// --- 2. DP table, initialized to +Inf ("unreached") ---
	dp := make([]float64, size*n)
	for i := range dp {
		dp[i] = math.Inf(1)
	}
	// Base cases: singleton subsets, entered directly from start.
	for j := 0; j < n; j++ {
		dp[(1<<uint(j))*n+j] = stepDist(start, coins[j])
	}

	// --- 3. Fill subsets in increasing mask order ---
	// Any proper submask of `mask` is numerically smaller, so a plain
	// ascending scan visits states in valid dependency order.
	for mask := 1; mask <= full; mask++ {
		if mask&(mask-1) == 0 {
			continue // singleton: base case already set
		}
		for j := 0; j < n; j++ {
			if mask&(1<<uint(j)) == 0 {
				continue // j not in subset
			}
			prev := mask ^ (1 << uint(j))
			best := math.Inf(1)
			for k := 0; k < n; k++ {
				if prev&(1<<uint(k)) == 0 {
					continue // k not in previous subset
				}
				if cand := dp[prev*n+k] + dist[k*n+j]; cand < best {
					best = cand
				}
			}
			dp[mask*n+j] = best
		}
	}

	// --- 4. Open path: take the cheapest endpoint, no closing edge ---
	best := math.Inf(1)
	for j := 0; j < n; j++ {
		if dp[full*n+j] < best {
			best = dp[full*n+j]
		}
	}
	if math.IsInf(best, 1) {
		return 0, ErrIncompleteDistances
	}

	return best, nil
}
