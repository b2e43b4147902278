// Command dashboard runs the ops dashboard API and its maintenance tasks.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/opsdesk-backend/internal/app"
	"github.com/heartmarshall/opsdesk-backend/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Ops dashboard backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API. Configuration comes from CONFIG_PATH (default
./config.yaml), an optional .env file and the environment.

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}
}

func migrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", "", "database DSN (defaults to the configured database.dsn)")

	for _, direction := range []struct {
		use, short string
	}{
		{app.MigrateUp, "Apply all pending migrations"},
		{app.MigrateDown, "Roll back the latest migration"},
		{app.MigrateStatus, "List migrations and whether they are applied"},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:   direction.use,
			Short: direction.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				target, err := resolveDSN(dsn)
				if err != nil {
					return err
				}
				return app.Migrate(cmd.Context(), target, direction.use, cmd.OutOrStdout())
			},
		})
	}

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}

// resolveDSN prefers the flag and falls back to the full configuration.
func resolveDSN(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.Database.DSN, nil
}
