package tour

import (
	"github.com/katalvlaran/coinwalk/board"
)

// memoKey identifies a solver suffix state: the coin currently occupied
// and the set of coins still to visit, encoded as an index bitmask.
// Coin indices are unique per board, so an identical key reached while
// solving a different subset denotes exactly the same suffix problem.
type memoKey struct {
	coin int
	set  uint64
}

// Memo caches completed suffix-tour costs for the Approximate solver.
// One Memo is created per top-level expectation run and shared, by
// reference, across every subset and every starting choice evaluated in
// that run. Entries are written only when a suffix path has been fully
// resolved, never for partial paths. Writers include the bounded
// depth−1 lookahead sub-calls, so an entry may hold a shallower
// completion than the main walk would have found; see Approximate for
// what that means for returned values.
//
// Memo is not safe for concurrent writers; the pipeline is
// single-threaded by design.
type Memo struct {
	seen map[memoKey]float64
}

// NewMemo creates a cache for a run with total coins overall.
// Returns ErrTooManyCoins when total exceeds the 64-bit mask capacity.
func NewMemo(total int) (*Memo, error) {
	if total < 0 || total > maxCoins {
		return nil, ErrTooManyCoins
	}

	return &Memo{seen: make(map[memoKey]float64)}, nil
}

// key builds the lookup key for (current, remaining).
func (m *Memo) key(current *board.Coin, remaining []*board.Coin) memoKey {
	var set uint64
	for _, cn := range remaining {
		set |= 1 << uint(cn.Index())
	}

	return memoKey{coin: current.Index(), set: set}
}

// Get returns the cached cost of visiting all of remaining starting at
// current, if one has been stored.
func (m *Memo) Get(current *board.Coin, remaining []*board.Coin) (float64, bool) {
	d, ok := m.seen[m.key(current, remaining)]

	return d, ok
}

// Set stores the cost of visiting all of remaining starting at current.
// A later write for the same state overwrites the earlier one.
func (m *Memo) Set(current *board.Coin, remaining []*board.Coin, distance float64) {
	m.seen[m.key(current, remaining)] = distance
}

// Len returns the number of cached suffix states.
func (m *Memo) Len() int { return len(m.seen) }
