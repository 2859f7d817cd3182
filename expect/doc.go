// Package expect computes the expected coin-collection tour length
// over all size-K subsets of a board's coins.
//
// What:
//
//   - ExpectedLength(board, K, opts...) — for every size-K combination
//     of coins, the best Approximate tour length over candidate starts;
//     returned as the arithmetic mean across combinations.
//
// Why:
//
//   - This is the quantity the whole repository exists to estimate:
//     "K coins will be drawn at random — how many steps should the
//     player expect to walk?"
//
// Options:
//
//   - WithDepth(d): lookahead depth for the approximate solver (default 2).
//   - WithoutMemo(): disable the run-wide suffix cache (more work;
//     cached suffixes can nudge some tour lengths upward, so the
//     uncached mean may differ slightly).
//   - WithStartHeuristic(): try only the tour.Start pick per subset
//     instead of every coin.
//
// Errors:
//
//   - ErrSubsetSize: K < 1 or K > coin count, rejected up front.
//   - pathfind.ErrNoPath (wrapped): some coin pair is unreachable; the
//     run aborts with no partial result.
//
// The computation is synchronous and CPU-bound; cost is one O(N²)
// oracle pass plus C(N,K)·K approximate-solver calls.
package expect
