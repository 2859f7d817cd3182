// Command coinwalk loads a board from a text file and prints the
// expected number of steps needed to collect a random K-subset of its
// coins.
//
// Usage:
//
//	coinwalk [-k K] [-depth D] [-heuristic] [-no-memo] [-profile cpu|mem] boardfile
//
// The board file holds one row per line: '.' free, '#' wall, '*' coin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"

	"github.com/katalvlaran/coinwalk/board"
	"github.com/katalvlaran/coinwalk/expect"
)

func main() {
	var (
		k         = flag.Int("k", 2, "subset size: how many coins are drawn at random")
		depth     = flag.Int("depth", 2, "lookahead depth of the approximate solver")
		heuristic = flag.Bool("heuristic", false, "try only the heuristic start coin per subset")
		noMemo    = flag.Bool("no-memo", false, "disable the shared suffix cache")
		prof      = flag.String("profile", "", "write a profile to the working directory: cpu or mem")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: coinwalk [flags] boardfile")
		flag.PrintDefaults()
		os.Exit(2)
	}

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		fatalf("unknown -profile mode %q (want cpu or mem)", *prof)
	}

	rows, err := readRows(flag.Arg(0))
	if err != nil {
		fatalf("read board: %v", err)
	}
	bd, err := board.New(rows)
	if err != nil {
		fatalf("parse board: %v", err)
	}
	coins := len(bd.Coins())

	opts := []expect.Option{expect.WithDepth(*depth)}
	if *heuristic {
		opts = append(opts, expect.WithStartHeuristic())
	}
	if *noMemo {
		opts = append(opts, expect.WithoutMemo())
	}

	started := time.Now()
	mean, err := expect.ExpectedLength(bd, *k, opts...)
	if err != nil {
		fatalf("expected length: %v", err)
	}
	elapsed := time.Since(started)

	fmt.Printf("board %dx%d, %s coins, K=%d (%s combinations)\n",
		bd.Height(), bd.Width(),
		humanize.Comma(int64(coins)), *k,
		humanize.Comma(combinationCount(coins, *k)))
	fmt.Printf("expected steps: %.4f\n", mean)
	fmt.Printf("elapsed: %s\n", elapsed.Round(time.Microsecond))
}

// readRows loads the board file as a slice of text rows, dropping a
// trailing blank line and any carriage returns.
func readRows(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		rows = append(rows, line)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	return rows, nil
}

// combinationCount returns C(n, k) as an int64; good far beyond any
// board size the solvers can handle anyway.
func combinationCount(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := int64(1)
	for i := 1; i <= k; i++ {
		c = c * int64(n-k+i) / int64(i)
	}

	return c
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "coinwalk: "+format+"\n", args...)
	os.Exit(1)
}
