// Package tour solves open-path coin-collection tours over cached step
// distances.
//
// What:
//
//   - Exact(start, coins) — true minimum open-path length via a
//     Held–Karp style bitmask dynamic program.
//   - Approximate(current, remaining, opts...) — pruned, memoized
//     greedy nearest-neighbor walk with bounded lookahead; an upper
//     bound on the optimum at a fraction of the cost.
//   - Memo — explicit suffix cache shared across solver calls, keyed
//     by (coin index, remaining-set bitmask).
//   - Start(coins) — heuristic pick of a promising tour-start coin.
//   - BruteForce(coins) — O(n!) permutation baseline for tiny sets.
//
// Why:
//
//   - The expectation aggregator needs one best-tour estimate per
//     (subset, start) pair; Approximate keeps that tractable while
//     Exact and BruteForce anchor its accuracy in tests.
//
// Guarantee:
//
//   - For identical inputs, Approximate(start, set) ≥ Exact(start, set).
//
// Complexity:
//
//   - Exact:       O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//   - Approximate: ~branching^depth per hop, cut by pruning and memo.
//   - Start:       O(n²).
//   - BruteForce:  O(n!·n).
//
// Errors:
//
//   - ErrNoCoins: empty set where a coin is required.
//   - ErrTooManyCoins: coin count exceeds what the receiver can hold —
//     the 64-bit mask capacity for Memo, 30 coins for Exact's DP table.
//   - ErrIncompleteDistances: a required pair distance is missing.
//
// All solvers read only the distance caches populated by pathfind;
// none of them ever touches the board.
package tour
