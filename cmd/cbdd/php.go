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

var PhpCmd = &cobra.Command{
	Use:          "php pigeons",
	Short:        "Solve the pigeonhole problem, with projection of the variables of each hole",
	RunE:         runPhp,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var phpHoles *int

func init() {
	phpHoles = PhpCmd.Flags().Int("holes", 0, "number of holes (default: pigeons - 1)")
}

func runPhp(cmd *cobra.Command, args []string) error {
	pigeons, err := strconv.Atoi(args[0])
	if err != nil || pigeons < 1 {
		return errors.Errorf("invalid number of pigeons %q", args[0])
	}
	holes := *phpHoles
	if holes == 0 {
		holes = pigeons - 1
	}
	if holes < 1 {
		return errors.Errorf("invalid number of holes (%d)", holes)
	}
	return guard(func() error {
		b := newBDD()
		f := buildPhp(b, pigeons, holes, *gcEvery)
		report(cmd.OutOrStdout(), b, f, pigeons*holes)
		if pigeons > holes && f != cbdd.Zero {
			return errors.Errorf("PHP(%d, %d) should be unsatisfiable, got %s", pigeons, holes, f)
		}
		return nil
	})
}

// phpVar is the variable for pigeon i in hole j.
func phpVar(holes, i, j int) int {
	return (i-1)*holes + j
}

// phpHole returns the clauses stating that at most one pigeon is in hole j.
func phpHole(pigeons, holes, j int) [][]int {
	res := [][]int{}
	for i := 1; i <= pigeons; i++ {
		for k := i + 1; k <= pigeons; k++ {
			res = append(res, []int{-phpVar(holes, i, j), -phpVar(holes, k, j)})
		}
	}
	return res
}

// buildPhp builds the pigeonhole formula for the given number of pigeons and
// holes. We first add the clauses stating that every pigeon is in some hole,
// then the constraints on each hole. The variables of a hole (except the last
// one) are quantified when its last clause is added, since they do not occur
// in the following clauses. The result is Zero when pigeons > holes.
func buildPhp(b *cbdd.BDD, pigeons, holes, gcEvery int) cbdd.Ref {
	s := &stepper{b: b, gcEvery: gcEvery}
	f := b.True()
	for i := 1; i <= pigeons; i++ {
		clause := make([]int, holes)
		for j := 1; j <= holes; j++ {
			clause[j-1] = phpVar(holes, i, j)
		}
		f = b.ApplyAnd(f, b.Clause(clause...))
		s.step("joinA", f)
	}
	for j := 1; j <= holes; j++ {
		var vars []int
		if j < holes {
			for i := 1; i <= pigeons; i++ {
				vars = append(vars, phpVar(holes, i, j))
			}
		}
		clauses := phpHole(pigeons, holes, j)
		for k, c := range clauses {
			if k == len(clauses)-1 && len(vars) != 0 {
				f = b.RelProduct(f, b.Clause(c...), vars...)
				s.step("relprod", f)
				continue
			}
			f = b.ApplyAnd(f, b.Clause(c...))
			s.step("joinB", f)
		}
		if len(clauses) == 0 && len(vars) != 0 {
			f = b.Exists(f, vars...)
			s.step("proj", f)
		}
	}
	return f
}
