package cfgflags

import (
	"songdl/internal/domain/consts"
	"songdl/internal/domain/keys"

	"github.com/spf13/cobra"
)

// InitDownloadFlags initializes flags controlling the downloader invocation.
func InitDownloadFlags(rootCmd *cobra.Command) error {
	f := rootCmd.Flags()

	f.String(keys.Downloader, consts.DefaultDownloader, "Downloader executable")
	f.String(keys.WorkDir, consts.DefaultWorkDir, "Directory the downloader writes into and songdl scans afterwards")
	f.String(keys.AudioExt, consts.DefaultAudioExt, "Audio container extension to download and process (e.g. m4a)")

	f.Bool(keys.EmbedThumbnail, true, "Embed the thumbnail as cover art")
	f.Bool(keys.CropThumbnail, true, "Crop the embedded thumbnail to a square")

	f.String(keys.CookieSource, "", "Browser to load cookies from (e.g. firefox)")
	f.String(keys.CookiePath, "", "Netscape format cookie file (takes precedence over --"+keys.CookieSource+")")
	f.Int(keys.DLRetries, 0, "Number of retries the downloader attempts per track")
	f.StringArray(keys.YtdlpArgs, nil, "Extra argument passed to the downloader (repeatable)")

	return bindFlags(f,
		keys.Downloader,
		keys.WorkDir,
		keys.AudioExt,
		keys.EmbedThumbnail,
		keys.CropThumbnail,
		keys.CookieSource,
		keys.CookiePath,
		keys.DLRetries,
		keys.YtdlpArgs,
	)
}
