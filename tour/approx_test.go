package tour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinwalk/board"
	"github.com/katalvlaran/coinwalk/tour"
)

//----------------------------------------------------------------------------//
// Value tests
//----------------------------------------------------------------------------//

// TestApproximate_Trivial: no remaining coins means no steps; one
// remaining coin costs exactly its direct edge.
func TestApproximate_Trivial(t *testing.T) {
	coins := makeCoins(t, [][]int{{0, 9}, {9, 0}})

	require.Zero(t, tour.Approximate(coins[0], nil))
	require.Equal(t, 9.0, tour.Approximate(coins[0], coins[1:]))
}

// TestApproximate_LookaheadBeatsGreedy: depth 2 avoids the greedy trap
// where the nearest neighbor strands the walk on the wrong side.
//
// The coins sit on a line at x = 0, 1, −2, 3 (start at x=0). Pure
// greedy hops right first (0→1→3→2 = 1+2+5 = 8); one level of
// lookahead sees that clearing the left side first is cheaper
// (0→2→1→3 = 2+3+2 = 7), which is also the exact optimum.
func TestApproximate_LookaheadBeatsGreedy(t *testing.T) {
	coins := makeCoins(t, [][]int{
		{0, 1, 2, 3},
		{1, 0, 3, 2},
		{2, 3, 0, 5},
		{3, 2, 5, 0},
	})

	greedy := tour.Approximate(coins[0], coins[1:], tour.WithDepth(1))
	require.Equal(t, 8.0, greedy)

	look := tour.Approximate(coins[0], coins[1:], tour.WithDepth(2))
	require.Equal(t, 7.0, look)

	exact, err := tour.Exact(coins[0], coins[1:])
	require.NoError(t, err)
	require.Equal(t, exact, look)
}

// TestApproximate_UpperBound: for every start and every depth, the
// approximation never undercuts the exact optimum on the same inputs.
func TestApproximate_UpperBound(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6, 7} {
		for seed := int64(1); seed <= 4; seed++ {
			coins := makeCoins(t, randomSymmetricDist(n, 30, seed))
			for start := range coins {
				rest := without(coins, start)
				exact, err := tour.Exact(coins[start], rest)
				require.NoError(t, err)

				for depth := 1; depth <= 3; depth++ {
					approx := tour.Approximate(coins[start], rest, tour.WithDepth(depth))
					require.GreaterOrEqual(t, approx, exact,
						"n=%d seed=%d start=%d depth=%d", n, seed, start, depth)
				}
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Memo tests
//----------------------------------------------------------------------------//

// TestApproximate_SmallSetMemoAgreement: with at most two remaining
// coins the pruning bound can never fire (positive distances make
// d(c2,c1) < d(cur,c1)+d(c1,c2) always), so lookahead sub-calls and
// the main walk reach identical completions and the cache is
// value-neutral. Larger sets do not get this guarantee; see
// TestApproximate_MemoLookaheadDrift.
func TestApproximate_SmallSetMemoAgreement(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		coins := makeCoins(t, randomSymmetricDist(3, 20, seed))
		memo, err := tour.NewMemo(len(coins))
		require.NoError(t, err)

		for start := range coins {
			rest := without(coins, start)
			plain := tour.Approximate(coins[start], rest)
			cached := tour.Approximate(coins[start], rest, tour.WithMemo(memo))
			require.Equal(t, plain, cached, "seed=%d start=%d", seed, start)

			// Asking again must replay the cached suffix, same value.
			replay := tour.Approximate(coins[start], rest, tour.WithMemo(memo))
			require.Equal(t, plain, replay, "seed=%d start=%d replay", seed, start)
		}
		require.Positive(t, memo.Len())
	}
}

// TestApproximate_MemoLookaheadDrift: the cache is written by the
// bounded depth−1 lookahead sub-calls, so a later cache hit can hand
// the main walk a shallower completion than it would have found
// itself.
//
// On this instance the start sits one step from a hub coin whose
// suffix is the lookahead-beats-greedy line: the plain depth-2 walk
// finishes s→a→c→b→d = 1+2+3+2 = 8, but the candidate-scoring
// sub-call at a has already cached its greedy completion of {b,c,d}
// as 8, so the cached walk replays 1+8 = 9. Both are real path
// costs and both stay at or above the exact optimum of 8.
func TestApproximate_MemoLookaheadDrift(t *testing.T) {
	coins := makeCoins(t, [][]int{
		{0, 1, 10, 10, 10},
		{1, 0, 1, 2, 3},
		{10, 1, 0, 3, 2},
		{10, 2, 3, 0, 5},
		{10, 3, 2, 5, 0},
	})

	plain := tour.Approximate(coins[0], coins[1:])
	require.Equal(t, 8.0, plain)

	memo, err := tour.NewMemo(len(coins))
	require.NoError(t, err)
	cached := tour.Approximate(coins[0], coins[1:], tour.WithMemo(memo))
	require.Equal(t, 9.0, cached)

	exact, err := tour.Exact(coins[0], coins[1:])
	require.NoError(t, err)
	require.Equal(t, 8.0, exact)
	require.GreaterOrEqual(t, cached, exact)
}

// TestApproximate_DoesNotMutateInput: the remaining slice is copied.
func TestApproximate_DoesNotMutateInput(t *testing.T) {
	coins := makeCoins(t, randomSymmetricDist(4, 10, 9))
	rest := without(coins, 0)
	snapshot := append([]*board.Coin(nil), rest...)

	_ = tour.Approximate(coins[0], rest)
	require.Equal(t, snapshot, rest)
}

//----------------------------------------------------------------------------//
// Memo unit tests
//----------------------------------------------------------------------------//

// TestMemo_RoundTrip: keys are (coin index, remaining-set) with set
// semantics — the order of the remaining slice is irrelevant.
func TestMemo_RoundTrip(t *testing.T) {
	coins := makeCoins(t, randomSymmetricDist(4, 10, 1))
	memo, err := tour.NewMemo(len(coins))
	require.NoError(t, err)

	_, ok := memo.Get(coins[0], coins[1:])
	require.False(t, ok)

	memo.Set(coins[0], coins[1:], 12)
	got, ok := memo.Get(coins[0], coins[1:])
	require.True(t, ok)
	require.Equal(t, 12.0, got)

	// Same set, different order: identical state.
	reordered := []*board.Coin{coins[3], coins[1], coins[2]}
	got, ok = memo.Get(coins[0], reordered)
	require.True(t, ok)
	require.Equal(t, 12.0, got)

	// Different current coin: different state.
	_, ok = memo.Get(coins[1], coins[2:])
	require.False(t, ok)

	require.Equal(t, 1, memo.Len())
}

// TestNewMemo_Capacity rejects coin counts beyond the mask width.
func TestNewMemo_Capacity(t *testing.T) {
	_, err := tour.NewMemo(64)
	require.ErrorIs(t, err, tour.ErrTooManyCoins)

	_, err = tour.NewMemo(-1)
	require.ErrorIs(t, err, tour.ErrTooManyCoins)

	m, err := tour.NewMemo(63)
	require.NoError(t, err)
	require.Zero(t, m.Len())
}
