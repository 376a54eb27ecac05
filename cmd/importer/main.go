// Package main provides the CLI that loads a WFM workbook into the reporting store.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/wfm/internal/config"
	"github.com/JonMunkholm/wfm/internal/core"
	_ "github.com/JonMunkholm/wfm/internal/core/tables" // Register all tables
	"github.com/JonMunkholm/wfm/internal/logging"
	"github.com/JonMunkholm/wfm/internal/store"
)

var (
	dbURL    string
	dbDriver string
	asJSON   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "importer [workbook.xlsx]",
		Short: "Load a WFM workbook into the reporting tables",
		Long: `importer reads every registered block of the WFM workbook and replaces
the contents of the matching tables. Without an argument the workbook
named by WFM_WORKBOOK is used.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVar(&dbURL, "db", "", "Store location (default: DATABASE_URL)")
	rootCmd.Flags().StringVar(&dbDriver, "driver", "", "Store driver: sqlite3 or pgx (default: DB_DRIVER)")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Print the import result as JSON")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if hint := core.FormatUserError(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}

// loadConfig reads configuration the way the server does: .env overrides
// the environment, and the store flags override both.
func loadConfig(dbURL, dbDriver string) (*config.Config, error) {
	_ = godotenv.Overload()

	if dbURL != "" {
		os.Setenv("DATABASE_URL", dbURL)
	}
	if dbDriver != "" {
		os.Setenv("DB_DRIVER", dbDriver)
	}
	return config.Load()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(dbURL, dbDriver)
	if err != nil {
		return err
	}
	logging.SetupWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	path := cfg.Import.Workbook
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no workbook given and WFM_WORKBOOK is not set")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("workbook: %w", err)
	}

	// Ctrl-C stops the pass; the history row is still written as failed.
	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(sigCtx, cfg.Import.Timeout)
	defer cancel()

	db, err := store.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	service := core.NewService(db)
	if err := service.EnsureSchema(ctx); err != nil {
		return err
	}

	result, importErr := service.Import(ctx, path)
	if err := report(cmd.OutOrStdout(), result, asJSON); err != nil {
		slog.Warn("failed to print result", "error", err)
	}
	return importErr
}

// report prints one line per loaded table followed by the total.
func report(w io.Writer, result core.ImportResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tROWS\tSOURCE")
	for _, t := range result.Tables {
		source := "workbook"
		if t.Fixture {
			source = "fixture"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", t.Table, t.Inserted, source)
	}
	fmt.Fprintf(tw, "total\t%d\t%d tables\n", result.TotalRows(), len(result.Tables))
	return tw.Flush()
}
