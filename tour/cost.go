package tour

import (
	"math"

	"github.com/katalvlaran/coinwalk/board"
)

// stepDist returns the cached step distance between two coins as a
// float64. A pair that was never populated by the oracle is treated as
// a missing edge and reported as +Inf, so it can never win a minimum
// and surfaces as ErrIncompleteDistances in the exact solver.
func stepDist(from, to *board.Coin) float64 {
	d, ok := from.StepDistance(to.Cell())
	if !ok {
		return math.Inf(1)
	}

	return float64(d)
}
