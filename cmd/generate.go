package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/forgelabs/shopforge/internal/config"
	"github.com/forgelabs/shopforge/internal/export"
	"github.com/forgelabs/shopforge/internal/generate"
	"github.com/forgelabs/shopforge/internal/verify"
)

var (
	genUserCount  int
	genOut        string
	genSeed       int64
	genChatCount  int
	genPromoCount int
	genAnchor     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and write it as CSV files",
	Long: `Run the full generation pipeline and export every collection as CSV.

The same seed, record counts and anchor time reproduce the output byte
for byte. The anchor defaults to now; pass --anchor (RFC 3339) to pin
the reference clock for reproducible runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("users") {
			cfg.Users = genUserCount
		}
		if cmd.Flags().Changed("out") {
			cfg.OutputDir = genOut
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = genSeed
		}
		if cmd.Flags().Changed("chats") {
			cfg.Chats = genChatCount
		}
		if cmd.Flags().Changed("promotions") {
			cfg.Promotions = genPromoCount
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		anchor := time.Now()
		if genAnchor != "" {
			anchor, err = time.Parse(time.RFC3339, genAnchor)
			if err != nil {
				return fmt.Errorf("invalid --anchor value %q: %w", genAnchor, err)
			}
		}

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

		color.Cyan("💾 Writing CSV files to %s...", cfg.OutputDir)
		manifest, err := export.WriteCSV(ds, cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		totalRows := 0
		for _, entry := range manifest {
			totalRows += entry.Rows
		}
		color.Green("🎉 Done: %d collections, %d rows total", len(manifest), totalRows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&genUserCount, "users", 50, "Number of users to generate")
	generateCmd.Flags().StringVar(&genOut, "out", "dummy_data/", "Output directory for CSV files")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 42, "Random seed")
	generateCmd.Flags().IntVar(&genChatCount, "chats", 200, "Number of chat messages")
	generateCmd.Flags().IntVar(&genPromoCount, "promotions", 15, "Number of promotions")
	generateCmd.Flags().StringVar(&genAnchor, "anchor", "", "Reference time in RFC 3339 (default: now)")
}
