package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/formula"
	"github.com/zephyrtronium/formula/quantity"
)

func newMolarityCmd() *cobra.Command {
	var molarity, volume string

	cmd := &cobra.Command{
		Use:   "molarity",
		Short: "Compute moles of solute from molarity and volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := quantity.Amount(molarity)
			if err != nil {
				return fmt.Errorf("--molarity: %w", err)
			}
			l, err := quantity.Amount(volume)
			if err != nil {
				return fmt.Errorf("--volume: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s mol\n", quantity.FormatAmount(formula.MolarityToMoles(m, l)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&molarity, "molarity", "M", "", "molarity of the solution in mol/L")
	cmd.Flags().StringVarP(&volume, "volume", "V", "", "volume of the solution in liters")
	cmd.MarkFlagRequired("molarity")
	cmd.MarkFlagRequired("volume")

	return cmd
}
