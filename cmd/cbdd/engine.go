// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"io"
	"strconv"

	"github.com/dalzilio/cbdd"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// newBDD returns a BDD configured with the global flags. A zero value for
// buckets is ignored by the library.
func newBDD() *cbdd.BDD {
	return cbdd.New(*capacity, cbdd.Buckets(*buckets))
}

// guard runs f and turns a panic raised by the library, for instance when the
// node table is full, into an error.
func guard(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.WithMessage(e, "bdd failure")
				return
			}
			panic(r)
		}
	}()
	return f()
}

// stepper calls CollectGarbage on the current roots every gcEvery steps.
type stepper struct {
	b       *cbdd.BDD
	gcEvery int
	count   int
}

func (s *stepper) step(name string, roots ...cbdd.Ref) {
	s.count++
	if s.gcEvery > 0 && s.count%s.gcEvery == 0 {
		s.b.CollectGarbage(roots...)
	}
	logger.Debug("step",
		"count", s.count,
		"name", name,
		"realsize", s.b.RealSize(),
		"hits", s.b.CacheHits(),
		"misses", s.b.CacheMisses(),
	)
}

// report prints a table with statistics about b and the result f.
func report(w io.Writer, b *cbdd.BDD, f cbdd.Ref, nvars int) {
	reclaimed := 0
	history := b.GCHistory()
	for _, p := range history {
		reclaimed += p.Before - p.After
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk([][]string{
		{"result", f.String()},
		{"result size", strconv.Itoa(b.Size(f))},
		{"models", b.Count(f, nvars).String()},
		{"live nodes", strconv.Itoa(b.RealSize())},
		{"last index", strconv.Itoa(b.LastIndex())},
		{"capacity", strconv.Itoa(b.Capacity())},
		{"cache hits", strconv.Itoa(b.CacheHits())},
		{"cache misses", strconv.Itoa(b.CacheMisses())},
		{"collections", strconv.Itoa(len(history))},
		{"reclaimed", strconv.Itoa(reclaimed)},
	})
	table.Render()
}

func writeDot(b *cbdd.BDD, filename string, f cbdd.Ref) error {
	if filename == "" {
		return nil
	}
	if err := b.FPrintDot(filename, f); err != nil {
		return errors.Wrapf(err, "cannot write %s", filename)
	}
	return nil
}
