package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/zephyrtronium/formula"
	"github.com/zephyrtronium/formula/ptable"
)

var log = commonlog.GetLogger("molar")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions are the flags shared by all commands.
type rootOptions struct {
	table   string
	seps    string
	strict  bool
	verbose int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "molar",
		Short:        "Chemical formulas, molar masses, and amounts of substance",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.verbose, nil)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.table, "table", os.Getenv("MOLAR_TABLE"), "JSON or YAML atomic mass table (default built-in, or $MOLAR_TABLE)")
	flags.StringVar(&opts.seps, "separators", "", "hydrate separators to use instead of · and .")
	flags.BoolVar(&opts.strict, "strict", false, "reject a leading multiplier on a formula with no hydrate separators")
	flags.CountVarP(&opts.verbose, "verbose", "v", "log more (repeatable)")

	cmd.AddCommand(newParseCmd(opts))
	cmd.AddCommand(newMassCmd(opts))
	cmd.AddCommand(newConvertCmd(opts))
	cmd.AddCommand(newMolarityCmd())
	cmd.AddCommand(newMCPCmd(opts))

	return cmd
}

// loadTable loads the mass table named by --table.
func (o *rootOptions) loadTable() (formula.MassTable, error) {
	if o.table == "" {
		log.Debug("using built-in table")
		return ptable.Default(), nil
	}
	t, err := ptable.LoadFile(o.table)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	log.Debugf("loaded %d elements from %s", len(t), o.table)
	return t, nil
}

// parseOptions converts flags to formula parse options.
func (o *rootOptions) parseOptions() []formula.ParseOption {
	var opts []formula.ParseOption
	if o.seps != "" {
		opts = append(opts, formula.Separators([]rune(o.seps)...))
	}
	if o.strict {
		opts = append(opts, formula.StrictMultipliers())
	}
	return opts
}
