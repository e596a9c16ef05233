// Package keys holds the viper keys used by songdl.
package keys

// Terminal keys
const (
	ConfigFile string = "config-file"

	Downloader string = "downloader"
	Muxer      string = "muxer"
	OutputDir  string = "output-dir"
	WorkDir    string = "work-dir"
	AudioExt   string = "ext"

	Concurrency string = "concurrency"
	FailFast    string = "fail-fast"

	EmbedThumbnail string = "embed-thumbnail"
	CropThumbnail  string = "crop-thumbnail"

	CookieSource string = "cookie-source"
	CookiePath   string = "cookie-file"
	DLRetries    string = "dl-retries"
	YtdlpArgs    string = "ytdlp-args"

	VerifyTags string = "verify-tags"
	HistoryDB  string = "history-db"
	LogFile    string = "log-file"
	DebugLevel string = "debug"

	HistoryLimit string = "limit"
)
