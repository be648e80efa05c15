// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"os"

	"github.com/dalzilio/cbdd"
	"github.com/dalzilio/cbdd/internal/dimacs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var CnfCmd = &cobra.Command{
	Use:          "cnf file.cnf",
	Short:        "Build the BDD of a formula in DIMACS CNF format",
	RunE:         runCnf,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	cnfProject *[]int
	cnfDot     *string
	cnfStrict  *bool
)

func init() {
	cnfProject = CnfCmd.Flags().IntSliceP("project", "p", nil, "variables to quantify existentially")
	cnfDot = CnfCmd.Flags().StringP("dot", "d", "", "write the result in DOT format to this file (- for stdout)")
	cnfStrict = CnfCmd.Flags().Bool("strict", false, "check variables and clause count against the problem line")
}

func runCnf(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "could not open CNF file")
	}
	defer file.Close()
	cnf, err := dimacs.Read(file, *cnfStrict)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", args[0])
	}
	logger.Info("read CNF", "file", args[0], "vars", cnf.Vars, "clauses", len(cnf.Clauses))
	return guard(func() error {
		b := newBDD()
		f := buildCnf(b, cnf, *cnfProject, *gcEvery)
		report(cmd.OutOrStdout(), b, f, maxVar(cnf))
		return writeDot(b, *cnfDot, f)
	})
}

// buildCnf returns the conjunction of the clauses in cnf, where the variables
// in project are existentially quantified. We quantify a variable as soon as
// we have added the last clause where it occurs, using a relational product.
func buildCnf(b *cbdd.BDD, cnf *dimacs.Cnf, project []int, gcEvery int) cbdd.Ref {
	last := make(map[int]int)
	for k, c := range cnf.Clauses {
		for _, lit := range c {
			last[abs(lit)] = k
		}
	}
	quantify := make([][]int, len(cnf.Clauses))
	for _, v := range project {
		if k, ok := last[v]; ok {
			quantify[k] = append(quantify[k], v)
		}
	}
	s := &stepper{b: b, gcEvery: gcEvery}
	f := b.True()
	for k, c := range cnf.Clauses {
		if f == cbdd.Zero {
			break
		}
		clause := b.Clause(c...)
		if len(quantify[k]) == 0 {
			f = b.ApplyAnd(f, clause)
			s.step("join", f)
			continue
		}
		f = b.RelProduct(f, clause, quantify[k]...)
		s.step("relprod", f)
	}
	return f
}

// maxVar returns the number of variables of cnf, which can be larger than the
// value declared in the problem line when the file is not checked.
func maxVar(cnf *dimacs.Cnf) int {
	res := cnf.Vars
	for _, c := range cnf.Clauses {
		for _, lit := range c {
			if v := abs(lit); v > res {
				res = v
			}
		}
	}
	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
