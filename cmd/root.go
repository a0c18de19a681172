package cmd

import (
	"fmt"
	"os"

	"enchantment-tracker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "enchantment-tracker",
	Short: "Minecraft Enchantment Tracker Service",
	Long: `Enchantment Tracker records which Minecraft enchantments you have found
as librarian trades, including the traded level and emerald cost, and serves
them to the browser table UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format to match user expectations (CLI tool); debug level
		// gives ISO8601 timestamps instead of epoch.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
