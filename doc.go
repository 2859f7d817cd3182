// Package coinwalk estimates how many grid steps a player needs, on
// average, to collect a randomly drawn subset of K coins out of the N
// coins placed on a walled rectangular board.
//
// The pipeline, leaves first:
//
//	board/    — Board & Coin data model: parse text rows ('.' free,
//	            '#' wall, '*' coin), validate shape, scan coins.
//	pathfind/ — step-distance oracle between two cells, plus pairwise
//	            population of every coin's distance cache.
//	tour/     — open-path tour solvers over cached distances:
//	            Exact (bitmask dynamic program), Approximate (pruned,
//	            memoized greedy with bounded lookahead), the
//	            starting-node heuristic, and a permutation baseline.
//	expect/   — the public entry point: ExpectedLength(board, K)
//	            averages best tour length over every K-subset.
//
// Quick ASCII example:
//
//	rows := []string{
//	    "*..#*",
//	    "..#..",
//	    "*....",
//	}
//	bd, _ := board.New(rows)
//	mean, _ := expect.ExpectedLength(bd, 2)
//
// All solvers consume only the distances cached by pathfind; nothing
// downstream ever re-runs a grid search. Everything is synchronous and
// CPU-bound; the caller bounds N and K to keep the exponential solvers
// tractable (the exact solver is O(2ⁿ·n²), the subset enumeration is
// C(N,K)).
package coinwalk
