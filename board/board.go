// Package board treats a slice of equal-length text rows as a walled
// rectangular grid. Recognized characters:
//
//   - '.' — free cell the player can walk into
//   - '#' — wall (the player cannot step into it)
//   - '*' — free cell holding a coin
//
// A Board is immutable once built; coin discovery order (row-major) is
// the canonical coin indexing used by every downstream solver.
package board

// Board is an immutable rectangular grid of cells parsed from text rows.
// Height and Width define dimensions; rows holds a private copy of the
// input so later mutation of the caller's slice cannot leak in.
type Board struct {
	height, width int
	rows          []string
}

// New constructs a Board from a non-empty, rectangular row slice.
// It copies the input to ensure immutability.
// Returns ErrEmptyBoard if there are no rows or no columns,
// ErrRaggedRows if any row length differs,
// ErrUnknownCell on any character outside {'.', '#', '*'}.
// Complexity: O(W×H) time and memory.
func New(rows []string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyBoard
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrRaggedRows
		}
		for _, ch := range row {
			switch ch {
			case Free, Wall, Star:
			default:
				return nil, ErrUnknownCell
			}
		}
	}
	// Private copy to prevent external mutation (strings are immutable,
	// the slice header is not).
	cp := make([]string, h)
	copy(cp, rows)

	return &Board{height: h, width: w, rows: cp}, nil
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.height && c.Col >= 0 && c.Col < b.width
}

// Walkable reports whether the player may occupy c: in bounds and not a
// wall. Coin cells are walkable.
// Complexity: O(1).
func (b *Board) Walkable(c Cell) bool {
	return b.InBounds(c) && b.rows[c.Row][c.Col] != Wall
}

// At returns the raw cell character; c must be in bounds.
func (b *Board) At(c Cell) byte {
	return b.rows[c.Row][c.Col]
}

// Coins scans the grid row-major and returns one Coin per '*' cell,
// indexed 0..n-1 in discovery order. Each call allocates fresh coins
// with empty distance caches.
// Complexity: O(W×H).
func (b *Board) Coins() []*Coin {
	var coins []*Coin
	for r := 0; r < b.height; r++ {
		for c := 0; c < b.width; c++ {
			if b.rows[r][c] == Star {
				coins = append(coins, NewCoin(Cell{Row: r, Col: c}, len(coins)))
			}
		}
	}

	return coins
}
