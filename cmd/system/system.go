package system

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/evanshaw/cadence_backend/config"
)

func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Maintenance and tooling commands",
	}

	cmd.AddCommand(NewInitCommand())
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewResetCommand())
	cmd.AddCommand(NewSeedCommand())
	cmd.AddCommand(NewGenDocsCommand())

	return cmd
}

// loadConfig resolves the --config flag from the root command and reads
// the configuration, shared by every system subcommand.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return cfg, nil
}
