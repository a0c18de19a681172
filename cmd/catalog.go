package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"enchantment-tracker/core/config"
	"enchantment-tracker/core/logger"
	"enchantment-tracker/feature/enchantment"
	"enchantment-tracker/feature/enchantment/mcdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogReport summarizes the configured catalog sources.
type catalogReport struct {
	GameVersion    string   `json:"game_version"`
	Curated        int      `json:"curated_definitions"`
	CuratedInvalid []string `json:"curated_invalid,omitempty"`
	GameData       int      `json:"gamedata_records"`
	Tradeable      int      `json:"gamedata_tradeable"`
}

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate and summarize the enchantment catalogs",
	Long: `Loads the curated catalog and the versioned game-data catalog from the
configured document store, validates every definition, and prints a summary.
Outputs human-readable text by default or JSON with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&logger.Config{Level: "warn", Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		docs, err := newDocumentStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to create document store: %w", err)
		}

		report := catalogReport{GameVersion: cfg.Server.GameVersion}

		curated := enchantment.NewFileCatalog(docs, logg)
		defs, err := curated.All(ctx)
		if err != nil {
			return fmt.Errorf("curated catalog: %w", err)
		}
		report.Curated = len(defs)
		for _, def := range defs {
			if problem := def.Validate(); problem != "" {
				report.CuratedInvalid = append(report.CuratedInvalid,
					fmt.Sprintf("%s: %s", def.Name, problem))
			}
		}

		gameData := mcdata.NewCatalog(docs, cfg.Server.GameVersion, logg)
		records, err := gameData.Records(ctx)
		if err != nil {
			return fmt.Errorf("game-data catalog: %w", err)
		}
		report.GameData = len(records)
		tradeable, _ := gameData.Tradeable(ctx)
		report.Tradeable = len(tradeable)

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Printf("Game version:        %s\n", report.GameVersion)
		fmt.Printf("Curated definitions: %d\n", report.Curated)
		fmt.Printf("Game-data records:   %d (%d tradeable)\n", report.GameData, report.Tradeable)
		for _, problem := range report.CuratedInvalid {
			fmt.Printf("INVALID: %s\n", problem)
		}
		if len(report.CuratedInvalid) > 0 {
			logg.Warn("Curated catalog has invalid definitions",
				zap.Int("count", len(report.CuratedInvalid)))
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("json", false, "Output detailed JSON report")
	RootCmd.AddCommand(catalogCmd)
}
