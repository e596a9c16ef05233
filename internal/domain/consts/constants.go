// Package consts holds various global, unchanging values.
package consts

// Filename convention written by the downloader and parsed back by songdl.
const (
	// FieldDelimiter separates artist, title and album in downloaded filenames.
	//
	// U+200E (left-to-right mark) is invisible and never appears in ordinary
	// metadata text, unlike hyphens or spaces.
	FieldDelimiter = "‎"

	// MissingFieldToken is what the downloader writes for an unavailable field.
	MissingFieldToken = "NA"

	// MissingFieldValue replaces MissingFieldToken for artist and album.
	MissingFieldValue = "-"

	// FieldCount is the number of delimiter-separated fields before the extension.
	FieldCount = 3
)

// File prefix and suffix
const (
	TempTag = ".songdl-"

	// DownloaderTempTag marks the downloader's own intermediate files (e.g. "x.temp.m4a").
	DownloaderTempTag = ".temp"
)

// Defaults
const (
	DefaultDownloader  = "yt-dlp"
	DefaultMuxer       = "ffmpeg"
	DefaultOutputDir   = "./downloaded_songs/"
	DefaultWorkDir     = "."
	DefaultAudioExt    = "m4a"
	DefaultConcurrency = 1
)
