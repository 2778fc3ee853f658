package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"itemtag-backend/internal/config"
	"itemtag-backend/internal/infrastructure/database"
	"itemtag-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the items/tags database schema",
		Long: `Apply or roll back the embedded goose migrations against the database
selected by DB_DRIVER (postgres or sqlite).

Examples:
  migrate up
  migrate status
  DB_DRIVER=sqlite SQLITE_PATH=dev.db migrate reset`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
		},
	}

	cmd.AddCommand(upCmd())
	cmd.AddCommand(downCmd())
	cmd.AddCommand(statusCmd())
	cmd.AddCommand(resetCmd())

	return cmd
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: withMigrator(func(cmd *cobra.Command, m *database.Migrator) error {
			results, err := m.Up(cmd.Context())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgBlue).Sprint("Database already up to date"))
				return nil
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		}),
	}
}

func downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: withMigrator(func(cmd *cobra.Command, m *database.Migrator) error {
			result, err := m.Down(cmd.Context())
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), []*goose.MigrationResult{result})
			return nil
		}),
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Roll back every applied migration",
		RunE: withMigrator(func(cmd *cobra.Command, m *database.Migrator) error {
			results, err := m.Reset(cmd.Context())
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		}),
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		RunE: withMigrator(func(cmd *cobra.Command, m *database.Migrator) error {
			statuses, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
			for _, s := range statuses {
				state := color.New(color.FgYellow).Sprint("pending")
				appliedAt := "-"
				if s.State == goose.StateApplied {
					state = color.New(color.FgGreen).Sprint("applied")
					appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, state, appliedAt, filepath.Base(s.Source.Path))
			}
			return w.Flush()
		}),
	}
}

func printResults(out io.Writer, results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil {
			continue
		}
		direction := color.New(color.FgGreen).Sprint("UP  ")
		if r.Direction == "down" {
			direction = color.New(color.FgRed).Sprint("DOWN")
		}
		fmt.Fprintf(out, "%s %d %s (%s)\n", direction, r.Source.Version, filepath.Base(r.Source.Path), r.Duration)
	}
}

// withMigrator mở database theo config, build Migrator và đóng connection khi xong
func withMigrator(fn func(cmd *cobra.Command, m *database.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if cmd.Context() == nil {
			cmd.SetContext(context.Background())
		}

		db, err := openDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		m, err := database.NewMigrator(cfg.Database.Driver, db)
		if err != nil {
			return err
		}
		return fn(cmd, m)
	}
}

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	if cfg.Database.Driver == database.DriverSQLite {
		s, err := database.OpenSQLite(ctx, cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s.DB, nil
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}
	return database.OpenPostgresSQL(dbConfig)
}
