// Package parsers adapts the DIMACS CNF grammar (spec.md §6) to the sat
// engine, building on the real github.com/rhartert/dimacs token reader
// rather than hand-rolling a scanner.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"
	"github.com/rhartert/microsat/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses a DIMACS CNF file and returns a new solver sized
// exactly to the instance's problem line, with every clause installed.
//
// This differs from a more conventional incremental-builder API on
// purpose: sat.Solver is constructed once for a fixed variable count
// (spec.md §6's "Constructor inputs"), so the solver can only come into
// being once the problem line has been read.
func LoadDIMACS(filename string, gzipped bool) (*sat.Solver, error) {
	rc, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer rc.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(rc, b); err != nil {
		return nil, err
	}
	if b.solver == nil {
		return nil, fmt.Errorf("DIMACS file %q has no problem line", filename)
	}
	return b.solver, nil
}

// builder implements dimacs.Builder, creating the solver once the
// problem line gives us its variable count and feeding it every clause.
type builder struct {
	solver *sat.Solver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem: %q", problem)
	}
	b.solver = sat.NewSolver(nVars, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	if b.solver == nil {
		return fmt.Errorf("clause line before problem line")
	}
	c := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			c[i] = sat.NegativeLiteral(-l - 1)
		} else {
			c[i] = sat.PositiveLiteral(l - 1)
		}
	}
	return b.solver.AddClause(c)
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}

// ReadModels returns the list of models (if any) contained in the given
// model file -- one line per model, space-separated signed DIMACS
// literals in variable order, used by the test suite to validate models
// against a trusted reference solver.
func ReadModels(filename string) ([][]bool, error) {
	rc, err := reader(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer rc.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(rc, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files should not have problem lines")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil // ignore comments
}

func (b *modelBuilder) Clause(tmpClause []int) error {
	model := make([]bool, len(tmpClause))
	for i, l := range tmpClause {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
