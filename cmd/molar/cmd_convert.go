package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/formula"
	"github.com/zephyrtronium/formula/quantity"
)

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var (
		from, to string
		src      string
		verb     string
		given    []string
		prec     uint
	)

	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Convert between grams, moles, particles, and liters of gas at STP",
		Long: `Convert an amount of substance between units. The amount is an expression
like "6.022×10^23", "1.5e-3", or "0.5 NA", where NA is Avogadro's number and
Vm is the molar volume of a gas at STP. Conversions to or from grams need
--formula.`,
		Example: `  molar convert 9 --from g --to atoms --formula H2O
  molar convert "6.022×10^23" --from molecules --to L`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prec == 0 {
				return errors.New("--prec must be at least 1")
			}
			fu, err := formula.ParseUnit(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			tu, err := formula.ParseUnit(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			copts := []quantity.ContextOption{quantity.Prec(prec)}
			for _, d := range given {
				name, val, ok := strings.Cut(d, "=")
				if !ok {
					return fmt.Errorf(`variable definitions must be "name=value", not %q`, d)
				}
				name = strings.TrimSpace(name)
				r, err := quantity.Eval(val, quantity.Constants(), quantity.Prec(prec))
				if err != nil {
					return fmt.Errorf("setting %s: %w", name, err)
				}
				copts = append(copts, quantity.SetVar(name, r))
			}
			v, err := quantity.Amount(args[0], copts...)
			if err != nil {
				return fmt.Errorf("amount %s: %w", args[0], err)
			}

			var m float64
			if src != "" {
				t, err := opts.loadTable()
				if err != nil {
					return err
				}
				m, err = formula.MolarMass(src, t, opts.parseOptions()...)
				if err != nil {
					return fmt.Errorf("molar mass of %s: %w", src, err)
				}
				log.Debugf("molar mass of %s is %g", src, m)
			}
			r, err := formula.Convert(v, fu, tu, m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), verb+" %s\n", r, tu)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "mol", "unit of the amount (g, mol, atoms, molecules, particles, L)")
	cmd.Flags().StringVar(&to, "to", "mol", "unit of the result")
	cmd.Flags().StringVar(&src, "formula", "", "formula of the substance")
	cmd.Flags().StringVar(&verb, "fmt", "%.4g", "result formatting verb")
	cmd.Flags().StringArrayVar(&given, "given", nil, "name=value variable definition (any number of times)")
	cmd.Flags().UintVarP(&prec, "prec", "p", 64, "precision of amount calculations in bits")

	return cmd
}
