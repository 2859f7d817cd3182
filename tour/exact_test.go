package tour_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinwalk/board"
	"github.com/katalvlaran/coinwalk/tour"
)

// TestExact_Known4 verifies the DP on a hand-checked 4-coin instance.
// From coin 0, the optimal open path is 0→1→2→3 = 1+2+1 = 4.
func TestExact_Known4(t *testing.T) {
	coins := makeCoins(t, [][]int{
		{0, 1, 4, 3},
		{1, 0, 2, 5},
		{4, 2, 0, 1},
		{3, 5, 1, 0},
	})

	got, err := tour.Exact(coins[0], coins[1:])
	require.NoError(t, err)
	require.Equal(t, 4.0, got)
}

// TestExact_EmptySet: nothing to visit costs nothing.
func TestExact_EmptySet(t *testing.T) {
	coins := makeCoins(t, [][]int{{0, 2}, {2, 0}})

	got, err := tour.Exact(coins[0], nil)
	require.NoError(t, err)
	require.Zero(t, got)
}

// TestExact_SingleCoin: one coin costs exactly the start edge.
func TestExact_SingleCoin(t *testing.T) {
	coins := makeCoins(t, [][]int{{0, 7}, {7, 0}})

	got, err := tour.Exact(coins[0], coins[1:])
	require.NoError(t, err)
	require.Equal(t, 7.0, got)
}

// TestExact_TooManyCoins: the DP refuses coin counts whose table could
// not be allocated, before touching any distances.
func TestExact_TooManyCoins(t *testing.T) {
	coins := make([]*board.Coin, 31)
	for i := range coins {
		coins[i] = board.NewCoin(board.Cell{Row: 0, Col: i}, i)
	}
	start := board.NewCoin(board.Cell{Row: 1, Col: 0}, 31)

	_, err := tour.Exact(start, coins)
	require.ErrorIs(t, err, tour.ErrTooManyCoins)
}

// TestExact_MissingDistance: an unpopulated pair means no finite path.
func TestExact_MissingDistance(t *testing.T) {
	// Two coins with empty caches: the start edges are unknown.
	a := board.NewCoin(board.Cell{Row: 0, Col: 0}, 0)
	b := board.NewCoin(board.Cell{Row: 0, Col: 1}, 1)

	_, err := tour.Exact(a, []*board.Coin{b})
	require.ErrorIs(t, err, tour.ErrIncompleteDistances)
}

// TestExact_MatchesBruteForce cross-checks the DP against exhaustive
// permutation enumeration on random symmetric instances: the minimum
// over start choices must match the any-start brute-force optimum
// exactly.
func TestExact_MatchesBruteForce(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6, 7, 8} {
		for seed := int64(1); seed <= 3; seed++ {
			coins := makeCoins(t, randomSymmetricDist(n, 25, seed))

			want := tour.BruteForce(coins)
			got := bestOverStarts(t, coins)
			require.Equal(t, want, got, "n=%d seed=%d", n, seed)
		}
	}
}
