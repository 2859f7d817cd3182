// Package board models a walled rectangular grid with coins, parsed
// from plain text rows.
//
// What:
//
//   - Board wraps a []string grid ('.' free, '#' wall, '*' coin) with
//     strict shape and charset validation, immutable once built.
//   - Cell is a value-identity coordinate usable as a map key.
//   - Coin pairs a Cell with a dense discovery index and a per-coin
//     cache of step distances to other cells.
//
// Why:
//
//   - Every downstream solver (exact, approximate, aggregator) keys its
//     bitmask states by coin index and reads only cached distances, so
//     the model fixes indexing order and distance storage in one place.
//
// Complexity:
//
//   - New:   O(W×H) validation + copy.
//   - Coins: O(W×H) scan.
//   - Cell/coin accessors: O(1).
//
// Errors:
//
//   - ErrEmptyBoard: input has no rows or no columns.
//   - ErrRaggedRows: rows have differing lengths.
//   - ErrUnknownCell: a character outside {'.', '#', '*'}.
package board
