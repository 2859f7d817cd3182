package tour_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/coinwalk/board"
	"github.com/katalvlaran/coinwalk/tour"
)

// makeCoins builds n coins on distinct cells with the given symmetric
// pairwise step distances already cached, bypassing the grid oracle so
// solver tests control their inputs exactly. dist must be n×n with a
// zero diagonal.
func makeCoins(t testing.TB, dist [][]int) []*board.Coin {
	t.Helper()
	n := len(dist)
	coins := make([]*board.Coin, n)
	for i := 0; i < n; i++ {
		coins[i] = board.NewCoin(board.Cell{Row: 0, Col: i}, i)
	}
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			t.Fatalf("dist row %d has length %d, want %d", i, len(dist[i]), n)
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			coins[i].SetStepDistance(coins[j].Cell(), dist[i][j])
		}
	}

	return coins
}

// randomSymmetricDist builds a random symmetric distance matrix with
// entries in [1, maxD], deterministic for a given seed.
func randomSymmetricDist(n, maxD int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := 1 + rng.Intn(maxD)
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist
}

// without returns coins minus the one at index idx.
func without(coins []*board.Coin, idx int) []*board.Coin {
	rest := make([]*board.Coin, 0, len(coins)-1)
	rest = append(rest, coins[:idx]...)
	rest = append(rest, coins[idx+1:]...)

	return rest
}

// bestOverStarts returns the minimum Exact open-path length over every
// start choice — the any-start optimum BruteForce also computes.
func bestOverStarts(t testing.TB, coins []*board.Coin) float64 {
	t.Helper()
	best := -1.0
	for i := range coins {
		l, err := tour.Exact(coins[i], without(coins, i))
		if err != nil {
			t.Fatalf("Exact from coin %d: %v", i, err)
		}
		if best < 0 || l < best {
			best = l
		}
	}

	return best
}
