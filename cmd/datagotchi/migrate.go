package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datagotchi/datagotchi/internal/bootstrap"
	"github.com/datagotchi/datagotchi/internal/database"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateUpCommand())

	return migrateCmd
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			app := bootstrap.New()
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				db, err := openDatabase(ctx, app, cfg)
				if err != nil {
					return err
				}
				applied, err := database.MigrateUp(db)
				if err != nil {
					return err
				}
				if !applied {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
				return err
			})
		},
	}
}
