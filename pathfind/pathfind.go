// Package pathfind computes step distances between board cells and
// populates every coin pair's distance cache.
//
// The oracle is a heuristic-ordered depth-first search: a LIFO frontier
// whose neighbor expansion is sorted by straight-line distance to the
// goal. It is fast and usually exact on corridor-like boards, but it is
// NOT a cost-optimal best-first search — on branching topologies it may
// return a non-minimal step count, and it may overwrite a cell's
// tentative distance from a later, non-optimal parent. Downstream
// solvers treat its output as ground truth, so the observed behavior is
// preserved deliberately rather than upgraded to BFS.
package pathfind

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/coinwalk/board"
)

// moveOffsets enumerates the four unit moves in expansion order:
// down, right, up, left. Tie-breaking in the heuristic sort is stable,
// so this order is observable and must not change.
var moveOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// StepDistance returns the number of unit grid moves from a to b as
// found by the heuristic-ordered depth-first search described in the
// package comment. Returns ErrNoPath if b cannot be reached from a.
//
// Contract:
//   - a and b must be walkable cells of bd.
//   - The returned count is an upper bound on the true shortest path;
//     on corridor boards it is exact.
//
// Complexity: O(W×H) pops worst case, each with an O(1)-size sort.
func StepDistance(a, b board.Cell, bd *board.Board) (int, error) {
	// steps records the tentative step count at which each cell was
	// last reached; later discoveries overwrite earlier ones.
	steps := map[board.Cell]int{a: 0}
	open := []board.Cell{a}                       // LIFO frontier
	queued := map[board.Cell]struct{}{a: {}}      // membership of open
	closed := make(map[board.Cell]struct{}, 16)   // fully expanded cells

	var node board.Cell
	for len(open) > 0 {
		// Pop the most recently pushed cell.
		node, open = open[len(open)-1], open[:len(open)-1]
		delete(queued, node)
		next := steps[node] + 1 // each move costs 1
		closed[node] = struct{}{}

		// Candidate moves, heuristically ordered: closest to the goal
		// first. The sort must be stable to keep moveOffsets order on
		// equal heuristic values.
		moves := neighbors(node, bd)
		if len(moves) == 0 {
			continue
		}
		sort.SliceStable(moves, func(i, j int) bool {
			return squaredDistance(b, moves[i]) < squaredDistance(b, moves[j])
		})

		// The goal has heuristic value 0, so if it is adjacent at all
		// it is moves[0].
		if moves[0] == b {
			return next, nil
		}

		for _, mv := range moves {
			steps[mv] = next // record/overwrite tentative distance
			if _, done := closed[mv]; done {
				continue
			}
			if _, waiting := queued[mv]; waiting {
				continue
			}
			open = append(open, mv)
			queued[mv] = struct{}{}
		}
	}

	return 0, ErrNoPath
}

// neighbors lists the walkable orthogonal neighbors of c in moveOffsets
// order. Complexity: O(1).
func neighbors(c board.Cell, bd *board.Board) []board.Cell {
	moves := make([]board.Cell, 0, 4)
	for _, d := range moveOffsets {
		n := board.Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if bd.Walkable(n) {
			moves = append(moves, n)
		}
	}

	return moves
}

// squaredDistance returns the squared Euclidean distance between two
// cells. Ordering by it is identical to ordering by the Euclidean
// distance itself, without any floating-point rounding.
func squaredDistance(a, b board.Cell) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col

	return dr*dr + dc*dc
}

// PopulateDistances runs the oracle once per unordered coin pair and
// caches the result symmetrically on both coins. On the first
// unreachable pair it aborts with an error wrapping ErrNoPath; no
// partial result is usable after a failure.
//
// Complexity: O(N²) oracle invocations for N coins.
func PopulateDistances(coins []*board.Coin, bd *board.Board) error {
	for i, ca := range coins {
		for _, cb := range coins[i+1:] {
			d, err := StepDistance(ca.Cell(), cb.Cell(), bd)
			if err != nil {
				return fmt.Errorf("pathfind: coin %d -> coin %d: %w", ca.Index(), cb.Index(), err)
			}
			ca.SetStepDistance(cb.Cell(), d)
			cb.SetStepDistance(ca.Cell(), d)
		}
	}

	return nil
}
