package main

import (
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/formula/internal/mcptools"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve formula tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.loadTable()
			if err != nil {
				return err
			}
			log.Infof("serving %s %s on stdio", mcptools.ServerName, mcptools.ServerVersion)
			return mcptools.NewServer(t, opts.parseOptions()...).Serve(cmd.Context())
		},
	}
	return cmd
}
