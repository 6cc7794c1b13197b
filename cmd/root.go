package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/evanshaw/cadence_backend/cmd/http"
	systemcmd "github.com/evanshaw/cadence_backend/cmd/system"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Cadence is the backend for a solo coaching practice.",
	Long: `Cadence powers a coaching practice's marketing site and client portal:
sessions, action items, a resource library, invoicing and notifications,
all in one deployment.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
