package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.2"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════╗",
		"║  ███████╗██╗  ██╗ ██████╗ ██████╗                    ║",
		"║  ██╔════╝██║  ██║██╔═══██╗██╔══██╗                   ║",
		"║  ███████╗███████║██║   ██║██████╔╝                   ║",
		"║  ╚════██║██╔══██║██║   ██║██╔═══╝                    ║",
		"║  ███████║██║  ██║╚██████╔╝██║ FORGE                  ║",
		"║  ╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚═╝                        ║",
		"║                                                      ║",
		"║     🛒 Referentially-Consistent Seed Data 🛒          ║",
		"╚══════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("               ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "shopforge",
	Short: "Synthesize a referentially-consistent e-commerce dataset",
	Long: `
ShopForge generates 21 related e-commerce collections (users, sellers,
products, orders, reviews, ...) where every foreign key resolves, every
derived field agrees with the rows it depends on, and no required cell
is ever null.

Generation runs as a dependency-ordered pipeline over write-once
collections, deterministically seeded so the same seed and record count
reproduce the dataset bit for bit.

Output targets:
- CSV files (one per collection, split into part1/ and part2/)
- PostgreSQL, MySQL or SQLite via the load command`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("ShopForge CLI version %s\n", Version)
			return
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./shopforge.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("shopforge.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
