// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"strconv"

	"github.com/dalzilio/cbdd"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var QueensCmd = &cobra.Command{
	Use:          "queens N",
	Short:        "Count the solutions of the N-queens problem",
	RunE:         runQueens,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func runQueens(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return errors.Errorf("invalid board size %q", args[0])
	}
	return guard(func() error {
		b := newBDD()
		board := buildQueens(b, n, *gcEvery)
		report(cmd.OutOrStdout(), b, board, n*n)
		return nil
	})
}

// queensVar is the variable for the square at row i and column j.
func queensVar(n, i, j int) int {
	return n*(i-1) + j
}

// queensSquare returns the BDD stating that there is a queen at (i, j) and that
// no other queen can capture it.
func queensSquare(b *cbdd.BDD, n, i, j int) cbdd.Ref {
	out := b.True()
	for row := n; row >= 1; row-- {
		diff := row - i
		if diff < 0 {
			diff = -diff
		}
		if diff == 0 {
			for col := n; col >= 1; col-- {
				if col == j {
					out = b.ApplyAnd(out, b.MkVar(queensVar(n, row, col)))
				} else {
					out = b.ApplyAnd(out, b.MkVar(-queensVar(n, row, col)))
				}
			}
			continue
		}
		if j+diff <= n {
			out = b.ApplyAnd(out, b.MkVar(-queensVar(n, row, j+diff)))
		}
		out = b.ApplyAnd(out, b.MkVar(-queensVar(n, row, j)))
		if diff < j {
			out = b.ApplyAnd(out, b.MkVar(-queensVar(n, row, j-diff)))
		}
	}
	return out
}

// buildQueens returns the BDD whose models are the solutions of the n-queens
// problem: there is one queen on each row and no two queens can capture each
// other.
func buildQueens(b *cbdd.BDD, n, gcEvery int) cbdd.Ref {
	board := b.True()
	for i := 1; i <= n; i++ {
		row := b.False()
		for j := 1; j <= n; j++ {
			row = b.ApplyOr(row, queensSquare(b, n, i, j))
		}
		board = b.ApplyAnd(board, row)
		if gcEvery > 0 {
			b.CollectGarbage(board)
		}
		logger.Debug("row", "index", i, "size", b.Size(board), "realsize", b.RealSize())
	}
	return board
}
