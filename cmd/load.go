package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/forgelabs/shopforge/internal/config"
	"github.com/forgelabs/shopforge/internal/generate"
	"github.com/forgelabs/shopforge/internal/loader"
	"github.com/forgelabs/shopforge/internal/verify"
)

var (
	loadProvider     string
	loadCreateTables bool
	loadBatch        int
	loadUserCount    int
	loadSeed         int64
	loadAnchor       string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate the dataset and load it into a database",
	Long: `Run the generation pipeline and insert every collection into the
configured database. Tables are loaded in dependency order so foreign
key constraints hold during the load.

The connection URL is read from the environment variable named by
database.url_env (DATABASE_URL by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("provider") {
			cfg.Database.Provider = loadProvider
		}
		if cmd.Flags().Changed("users") {
			cfg.Users = loadUserCount
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = loadSeed
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		anchor := time.Now()
		if loadAnchor != "" {
			anchor, err = time.Parse(time.RFC3339, loadAnchor)
			if err != nil {
				return fmt.Errorf("invalid --anchor value %q: %w", loadAnchor, err)
			}
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		db, err := loader.Open(cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		color.Cyan("🛒 Generating dataset (users=%d, seed=%d)...", cfg.Users, cfg.Seed)
		params := generate.Params{
			Users:      cfg.Users,
			Chats:      cfg.Chats,
			Promotions: cfg.Promotions,
		}
		ds, err := generate.Run(params, cfg.Seed, anchor)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		color.Cyan("🔍 Verifying dataset integrity...")
		if err := verify.Check(ds); err != nil {
			return fmt.Errorf("integrity check failed: %w", err)
		}

		color.Cyan("📦 Loading into %s...", cfg.Database.Provider)
		l := loader.New(db, cfg.Database.Provider, loadBatch)
		if err := l.Load(cmd.Context(), ds, loadCreateTables); err != nil {
			return err
		}

		color.Green("🎉 Load complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadProvider, "provider", "postgresql", "Database provider (postgresql, mysql, sqlite)")
	loadCmd.Flags().BoolVar(&loadCreateTables, "create-tables", false, "Create tables before inserting")
	loadCmd.Flags().IntVar(&loadBatch, "batch", loader.DefaultBatchSize, "Insert batch size")
	loadCmd.Flags().IntVar(&loadUserCount, "users", 50, "Number of users to generate")
	loadCmd.Flags().Int64Var(&loadSeed, "seed", 42, "Random seed")
	loadCmd.Flags().StringVar(&loadAnchor, "anchor", "", "Reference time in RFC 3339 (default: now)")
}
