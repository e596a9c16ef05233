package models

// Settings is the configuration for one run.
type Settings struct {
	PlaylistURL string
	Site        string

	DownloaderPath string
	MuxerPath      string
	OutputDir      string
	WorkDir        string
	AudioExt       string

	// Concurrency is the number of files tagged at once.
	Concurrency int
	// FailFast skips remaining files after the first failure.
	FailFast bool

	EmbedThumbnail bool
	CropThumbnail  bool

	CookieSource string
	CookieFile   string
	Retries      int
	ExtraArgs    []string

	VerifyTags bool
	HistoryDB  string
}
