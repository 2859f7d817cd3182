// Package pathfind is the step-distance oracle for coinwalk.
//
// What:
//
//   - StepDistance(a, b, board) counts unit moves (up/down/left/right)
//     between two cells via a heuristic-ordered depth-first search.
//   - PopulateDistances runs the oracle once per unordered coin pair
//     and caches the result symmetrically on both coins.
//
// Why:
//
//   - Every tour solver reads only cached pairwise distances; the grid
//     is searched exactly once per coin pair, never again downstream.
//
// Caveat:
//
//   - The traversal pops a LIFO stack and orders neighbors by
//     straight-line distance to the goal. That is a depth-first search
//     with a heuristic tie to the goal, not Dijkstra/BFS: on boards
//     with branching corridors it can return a non-minimal count. The
//     pipeline treats the returned value as the step distance by
//     definition, so this behavior is kept as-is.
//
// Complexity:
//
//   - StepDistance: O(W×H) cell expansions worst case.
//   - PopulateDistances: O(N²) oracle runs for N coins.
//
// Errors:
//
//   - ErrNoPath: the goal is unreachable; fatal for the whole run.
package pathfind
