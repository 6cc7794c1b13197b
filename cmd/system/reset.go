package system

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/evanshaw/cadence_backend/pkg/database"
)

// NewResetCommand drops and recreates the application database, then
// applies the schema. Development convenience; refuses to run without
// the --yes flag.
func NewResetCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate the application database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("this destroys all data; re-run with --yes to confirm")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			fmt.Printf("Dropping database %q...\n", cfg.Database.DBName)
			if err := database.DropDatabase(cfg); err != nil {
				return err
			}
			if err := database.InitializeDatabase(cfg); err != nil {
				return err
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()
			if err := database.MigrateEnt(ctx, client); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}

			fmt.Println("Database reset complete. Run `cadence system seed` to recreate the coach account.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the destructive reset")

	return cmd
}
