package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

func newMassCmd(opts *rootOptions) *cobra.Command {
	var (
		inname string
		verb   string
		jobs   int
	)

	cmd := &cobra.Command{
		Use:   "mass [formula...]",
		Short: "Compute molar masses in g/mol",
		Long: `Compute the molar mass of each formula given as an argument or read one
per line from --in. Output is in input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formulas := args
			if inname != "" {
				more, err := readInput(cmd, inname)
				if err != nil {
					return err
				}
				formulas = append(formulas, more...)
			}
			if len(formulas) == 0 {
				return fmt.Errorf("no formulas")
			}
			if jobs < 1 {
				return fmt.Errorf("--jobs must be positive, not %d", jobs)
			}
			t, err := opts.loadTable()
			if err != nil {
				return err
			}

			log.Debugf("computing %d molar masses with %d jobs", len(formulas), jobs)
			res, err := molarMasses(cmd.Context(), formulas, t, jobs, opts.parseOptions())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range res {
				if r.err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.formula, r.err)
					continue
				}
				fmt.Fprintf(out, "%s\t"+verb+"\n", r.formula, r.mass)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d formulas failed", failed, len(res))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inname, "in", "", "file with one formula per line (- for stdin)")
	cmd.Flags().StringVar(&verb, "fmt", "%.3f", "result formatting verb")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of formulas to compute concurrently")

	return cmd
}

func readInput(cmd *cobra.Command, inname string) ([]string, error) {
	var r io.Reader
	if inname == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(inname)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	v, err := readFormulas(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return v, nil
}
