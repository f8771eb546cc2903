package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/gl_posting_engine/internal/adapters/database/pgsql"
	portssvc "github.com/SscSPs/gl_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/gl_posting_engine/internal/core/services"
	"github.com/SscSPs/gl_posting_engine/internal/middleware"
	"github.com/SscSPs/gl_posting_engine/internal/platform/config"
	"github.com/SscSPs/gl_posting_engine/pkg/database"
	"github.com/spf13/cobra"
)

var (
	flagDB      string
	flagUser    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "glctl",
	Short:         "Operate the general ledger posting engine from the command line",
	Long:          "glctl posts, reverses and accrues against the ledger database directly, using the same services and account role table as the HTTP server.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "PostgreSQL URL (defaults to PGSQL_URL)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "glctl", "User ID recorded in audit fields")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flagDB != "" {
		cfg.DatabaseURL = flagDB
	}
	return cfg, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// withServices opens the database, builds the service container and runs fn.
// The pool is closed when fn returns.
func withServices(cmd *cobra.Command, fn func(ctx context.Context, svc *portssvc.ServiceContainer) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := middleware.WithLogger(cmd.Context(), newLogger())

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	svc, err := services.NewServiceContainer(ctx, cfg, pgsql.NewRepositoryProvider(pool))
	if err != nil {
		return err
	}
	return fn(ctx, svc)
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
