package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/formula"
)

// massResult is the molar mass of one formula in a batch.
type massResult struct {
	formula string
	mass    float64
	err     error
}

// molarMasses computes molar masses with at most jobs concurrent workers. The
// results are in the same order as formulas. Errors from individual formulas
// are in the results; the returned error is only for cancellation.
func molarMasses(ctx context.Context, formulas []string, t formula.Table, jobs int, opts []formula.ParseOption) ([]massResult, error) {
	res := make([]massResult, len(formulas))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, src := range formulas {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := formula.MolarMass(src, t, opts...)
			res[i] = massResult{formula: src, mass: m, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// readFormulas reads one formula per line, skipping blank lines and lines
// starting with #.
func readFormulas(r io.Reader) ([]string, error) {
	var v []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v = append(v, line)
	}
	return v, s.Err()
}
