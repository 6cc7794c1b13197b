package http

import "github.com/spf13/cobra"

// NewHTTPCommand groups the HTTP-facing subcommands. Today that is only
// `start`; keeping the group means future server tooling lands under it.
func NewHTTPCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "http",
		Short: "Run the portal API server",
	}
	root.AddCommand(NewStartCommand())
	return root
}
