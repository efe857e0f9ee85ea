package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirasaad/bankseed/infra/initializer"
	fixtures "github.com/amirasaad/bankseed/internal/fixtures/seed"
	"github.com/amirasaad/bankseed/pkg/app"
	"github.com/amirasaad/bankseed/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type options struct {
	envFile         string
	dataset         string
	driver          string
	databaseURL     string
	keep            bool
	allowProduction bool
	listDatasets    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "❌ %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "bankseed",
		Short: "Recreate the demo bank schema and fill it with sample data",
		Long: `bankseed drops and recreates the demo bank tables, then inserts settings,
users, branches, one checking account per user and a week of balances and
transactions for every account.

Each table is only seeded while it is empty, so running with --keep against
an existing database changes nothing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.listDatasets {
				for _, name := range fixtures.Names() {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "environment file to load before reading the environment")
	flags.StringVarP(&opts.dataset, "dataset", "d", "", "embedded dataset name or YAML file path (overrides SEED_DATASET)")
	flags.StringVar(&opts.driver, "driver", "", "database driver: postgres, mysql or sqlite (overrides DATABASE_DRIVER)")
	flags.StringVar(&opts.databaseURL, "database-url", "", "database DSN (overrides DATABASE_URL)")
	flags.BoolVar(&opts.keep, "keep", false, "keep existing tables and rows instead of recreating the schema")
	flags.BoolVar(&opts.allowProduction, "allow-production", false, "allow seeding when APP_ENV=production")
	flags.BoolVar(&opts.listDatasets, "list-datasets", false, "print the embedded dataset names and exit")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	applyFlags(cmd, opts, cfg)

	deps, cleanup, err := initializer.InitializeDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			deps.Logger.Warn("Failed to close connections", "error", err)
		}
	}()

	a, err := app.InitializeAndSeed(ctx, app.New(deps, cfg))
	if err != nil {
		return err
	}

	summary, err := a.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarise seeded tables: %w", err)
	}
	bankCode, _ := a.Setting(ctx, "BankCode")
	printSummary(cmd.OutOrStdout(), deps.Dataset.Name, bankCode, summary)
	return nil
}

func applyFlags(cmd *cobra.Command, opts *options, cfg *config.App) {
	flags := cmd.Flags()
	if flags.Changed("dataset") {
		cfg.Seed.Dataset = opts.dataset
	}
	if flags.Changed("driver") {
		cfg.DB.Driver = opts.driver
	}
	if flags.Changed("database-url") {
		cfg.DB.Url = opts.databaseURL
	}
	if flags.Changed("keep") {
		cfg.Seed.Recreate = !opts.keep
	}
	if flags.Changed("allow-production") {
		cfg.Seed.AllowProduction = opts.allowProduction
	}
}

func printSummary(w io.Writer, dataset, bankCode string, summary []app.TableCount) {
	title := color.New(color.FgGreen, color.Bold)
	label := color.New(color.FgCyan)
	value := color.New(color.FgYellow, color.Bold)

	_, _ = title.Fprintf(w, "✅ Seeded dataset %q", dataset)
	if bankCode != "" {
		_, _ = fmt.Fprint(w, " for bank ")
		_, _ = value.Fprint(w, bankCode)
	}
	_, _ = fmt.Fprintln(w)
	for _, c := range summary {
		_, _ = label.Fprintf(w, "  %-18s", c.Table)
		_, _ = value.Fprintf(w, "%6d\n", c.Rows)
	}
}
