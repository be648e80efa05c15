// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package dimacs reads Boolean formulas in conjunctive normal form written
// with the DIMACS CNF format. Literals are non-zero integers, a negative value
// denoting a negated variable, and each clause ends with a 0.
package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Visitor is notified of the content of a CNF file while it is read. Init is
// called once, with the values found in the problem line. Add is called for
// each literal, with 0 marking the end of a clause, and Eof at the end of the
// input.
type Visitor interface {
	Init(nvars, nclauses int)
	Add(lit int)
	Eof()
}

// ReadCnf reads a CNF formula from r. We accept comment lines (starting with
// a c) anywhere, clauses spanning several lines, and a missing 0 at the end of
// the last clause. A line starting with % ends the input. When strict is true,
// we also check that variables and the number of clauses match the problem
// line.
func ReadCnf(r io.Reader, vis Visitor, strict bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	nvars, nclauses := -1, -1
	clauses, pending, line := 0, false, 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == 'c' {
			continue
		}
		// end marker used in the SATLIB benchmarks
		if text[0] == '%' {
			break
		}
		if text[0] == 'p' {
			if nvars >= 0 {
				return errors.Errorf("line %d: duplicate problem line", line)
			}
			var err error
			if nvars, nclauses, err = problem(text); err != nil {
				return errors.Wrapf(err, "line %d", line)
			}
			vis.Init(nvars, nclauses)
			continue
		}
		if nvars < 0 {
			return errors.Errorf("line %d: clause before the problem line", line)
		}
		for _, field := range strings.Fields(text) {
			lit, err := strconv.Atoi(field)
			if err != nil {
				return errors.Wrapf(err, "line %d: bad literal %q", line, field)
			}
			if strict && (lit > nvars || -lit > nvars) {
				return errors.Errorf("line %d: literal %d out of range (%d variables)", line, lit, nvars)
			}
			vis.Add(lit)
			if lit == 0 {
				clauses++
				pending = false
			} else {
				pending = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "error reading CNF")
	}
	if nvars < 0 {
		return errors.New("missing problem line")
	}
	if pending {
		vis.Add(0)
		clauses++
	}
	if strict && clauses != nclauses {
		return errors.Errorf("found %d clauses, expected %d", clauses, nclauses)
	}
	vis.Eof()
	return nil
}

func problem(text string) (int, int, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 || fields[1] != "cnf" {
		return 0, 0, errors.Errorf("bad problem line %q", text)
	}
	nvars, err := strconv.Atoi(fields[2])
	if err != nil || nvars < 0 {
		return 0, 0, errors.Errorf("bad number of variables %q", fields[2])
	}
	nclauses, err := strconv.Atoi(fields[3])
	if err != nil || nclauses < 0 {
		return 0, 0, errors.Errorf("bad number of clauses %q", fields[3])
	}
	return nvars, nclauses, nil
}

// ************************************************************

// Cnf is a formula in conjunctive normal form.
type Cnf struct {
	Vars    int     // number of variables, from the problem line
	Clauses [][]int // each clause is a list of non-zero literals
	current []int
}

func (c *Cnf) Init(nvars, nclauses int) {
	c.Vars = nvars
	c.Clauses = make([][]int, 0, nclauses)
}

func (c *Cnf) Add(lit int) {
	if lit == 0 {
		c.Clauses = append(c.Clauses, c.current)
		c.current = nil
		return
	}
	c.current = append(c.current, lit)
}

func (c *Cnf) Eof() {}

// Read returns the CNF formula in r. See ReadCnf for the accepted syntax.
func Read(r io.Reader, strict bool) (*Cnf, error) {
	cnf := &Cnf{}
	if err := ReadCnf(r, cnf, strict); err != nil {
		return nil, err
	}
	return cnf, nil
}
