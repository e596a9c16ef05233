// Package cfg provides configuration and command-line interface setup for songdl.
package cfg

import (
	"strings"

	cfgflags "songdl/internal/cfg/flags"
	"songdl/internal/domain/consts"
	"songdl/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd *cobra.Command

// newRootCmd returns the root command. The playlist URL is the last positional argument.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   consts.ProgramName + " [flags] <playlist-url>",
		Short: "songdl downloads a playlist's audio and tags each track from its filename.",
		Args:  cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile := viper.GetString(keys.ConfigFile); configFile != "" {
				// load and normalize keys from any Viper-supported config file
				if err := loadConfigFile(configFile); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f := cmd.Flags().Lookup("help"); f != nil && f.Changed {
				return nil
			}
			viper.Set(keys.PlaylistURL, args[len(args)-1])
			viper.Set(keys.Execute, true)
			return nil
		},
	}
}

// InitCommands initializes all commands and their flags.
func InitCommands() error {
	viper.SetEnvPrefix(consts.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // Convert "output-dir" to "SONGDL_OUTPUT_DIR"
	viper.AutomaticEnv()

	rootCmd = newRootCmd()

	if err := cfgflags.InitProgramFlags(rootCmd); err != nil {
		return err
	}
	if err := cfgflags.InitDownloadFlags(rootCmd); err != nil {
		return err
	}
	if err := cfgflags.InitProcessFlags(rootCmd); err != nil {
		return err
	}

	rootCmd.AddCommand(initHistoryCmd())
	return nil
}

// Execute runs the root command against os.Args.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteArgs runs the root command against the given arguments.
func ExecuteArgs(args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
