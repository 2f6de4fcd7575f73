package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/formula"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <formula>...",
		Short: "Count the atoms of each element in formulas",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat != "text" && outputFormat != "json" {
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			popts := opts.parseOptions()
			type parsed struct {
				Formula string         `json:"formula"`
				Hill    string         `json:"hill"`
				Counts  formula.Counts `json:"counts"`
			}
			var all []parsed
			for _, src := range args {
				c, err := formula.ParseHydrate(src, popts...)
				if err != nil {
					return fmt.Errorf("parse %s: %w", src, err)
				}
				log.Debugf("%s: %d elements, %d atoms", src, len(c), c.Atoms())
				all = append(all, parsed{Formula: src, Hill: c.String(), Counts: c})
			}

			out := cmd.OutOrStdout()
			if outputFormat == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(all); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				return nil
			}
			for _, p := range all {
				var b strings.Builder
				for _, sym := range p.Counts.Symbols() {
					fmt.Fprintf(&b, " %s:%d", sym, p.Counts[sym])
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", p.Formula, p.Hill, strings.TrimSpace(b.String()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
