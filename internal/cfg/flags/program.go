// Package cfgflags handles Cobra/Viper commands.
package cfgflags

import (
	"songdl/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitProgramFlags initializes user flag settings related to the core program. E.g. logging level.
func InitProgramFlags(rootCmd *cobra.Command) error {

	// Config file
	rootCmd.PersistentFlags().String(keys.ConfigFile, "", "Path to a config file (any format Viper reads, e.g. YAML, TOML, JSON)")
	if err := viper.BindPFlag(keys.ConfigFile, rootCmd.PersistentFlags().Lookup(keys.ConfigFile)); err != nil {
		return err
	}

	// Log file
	rootCmd.PersistentFlags().String(keys.LogFile, "", "Also write logs to this file (JSON lines)")
	if err := viper.BindPFlag(keys.LogFile, rootCmd.PersistentFlags().Lookup(keys.LogFile)); err != nil {
		return err
	}

	// Run history
	rootCmd.PersistentFlags().String(keys.HistoryDB, "", "SQLite database to record run history in (empty disables)")
	if err := viper.BindPFlag(keys.HistoryDB, rootCmd.PersistentFlags().Lookup(keys.HistoryDB)); err != nil {
		return err
	}

	// Debug level
	rootCmd.PersistentFlags().Int(keys.DebugLevel, 0, "Debugging level (0 - 5)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}
	return nil
}
