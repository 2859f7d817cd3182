// Package board defines core types and sentinel errors for the board
// subpackage of github.com/katalvlaran/coinwalk.
package board

import "errors"

// Sentinel errors for board construction.
var (
	// ErrEmptyBoard indicates the input has no rows or no columns.
	ErrEmptyBoard = errors.New("board: input must have at least one row and one column")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("board: all rows must have the same length")
	// ErrUnknownCell indicates a character other than '.', '#' or '*'.
	ErrUnknownCell = errors.New("board: unrecognized cell character")
)

// Recognized cell characters.
const (
	Free = '.' // walkable empty cell
	Wall = '#' // impassable cell
	Star = '*' // walkable cell holding a coin
)

// Cell is a grid coordinate. Cells compare by value: two Cell values
// are the same cell iff Row and Col are equal, which makes Cell usable
// directly as a map key.
type Cell struct {
	Row, Col int
}

// Coin is a collectible point on the grid. Its identity is its Cell;
// Index is a small dense integer assigned in row-major discovery order,
// unique within one Board. The step-distance cache is populated by the
// pathfind oracle and read by every tour solver afterwards.
type Coin struct {
	cell  Cell
	index int
	dist  map[Cell]int
}

// NewCoin creates a coin at c with discovery index i and an empty
// distance cache.
func NewCoin(c Cell, i int) *Coin {
	return &Coin{cell: c, index: i, dist: make(map[Cell]int)}
}

// Cell returns the coin's grid coordinate.
func (cn *Coin) Cell() Cell { return cn.cell }

// Index returns the coin's discovery index.
func (cn *Coin) Index() int { return cn.index }

// Same reports whether other denotes the same coin, i.e. the same cell.
func (cn *Coin) Same(other *Coin) bool { return cn.cell == other.cell }

// SetStepDistance records the step distance from this coin to the cell
// at to. Later writes overwrite earlier ones.
func (cn *Coin) SetStepDistance(to Cell, distance int) {
	cn.dist[to] = distance
}

// StepDistance returns the cached step distance from this coin to the
// cell at to. The cache must have been populated for the pair first
// (see pathfind.PopulateDistances); an unknown cell reports ok=false.
func (cn *Coin) StepDistance(to Cell) (int, bool) {
	d, ok := cn.dist[to]

	return d, ok
}
