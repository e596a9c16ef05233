package cfgflags

import (
	"songdl/internal/domain/consts"
	"songdl/internal/domain/keys"

	"github.com/spf13/cobra"
)

// InitProcessFlags initializes flags controlling post-download tagging.
func InitProcessFlags(rootCmd *cobra.Command) error {
	f := rootCmd.Flags()

	f.String(keys.Muxer, consts.DefaultMuxer, "Muxer executable used for tagging and thumbnail cropping")
	f.StringP(keys.OutputDir, "o", consts.DefaultOutputDir, "Directory finished tracks are moved into (created if missing)")
	f.IntP(keys.Concurrency, "l", consts.DefaultConcurrency, "Maximum files tagged at once")
	f.Bool(keys.FailFast, false, "Skip all remaining files after the first failure")
	f.Bool(keys.VerifyTags, false, "Read tags back from finished files and warn on mismatch")

	return bindFlags(f,
		keys.Muxer,
		keys.OutputDir,
		keys.Concurrency,
		keys.FailFast,
		keys.VerifyTags,
	)
}
