// Package command holds the flags passed to songdl's external programs.
package command

// General
const (
	CookiesFromBrowser = "--cookies-from-browser"
	CookiePath         = "--cookies"
	Format             = "-f"
	Output             = "--output"
	Retries            = "--retries"
	YTDLP              = "yt-dlp"
)

// Thumbnails
const (
	EmbedThumbnail     = "--embed-thumbnail"
	ConvertThumbnail   = "--convert-thumbnail"
	ThumbnailFormat    = "jpg"
	ExecBeforeDownload = "--exec-before-download"

	// ThumbnailPath is the shell-quoted path of the last fetched thumbnail.
	ThumbnailPath = "%(thumbnails.-1.filepath)q"

	// CroppedPrefix is prepended to the thumbnail path while cropping.
	CroppedPrefix = "_"

	// SquareCrop crops the thumbnail to its shorter side.
	SquareCrop = `crop='if(gt(ih,iw),iw,ih)':'if(gt(iw,ih),ih,iw)'`
)

// Output template fields.
const (
	FieldArtist = "%(artist)s"
	FieldTitle  = "%(title)s"
	FieldAlbum  = "%(album)s"
	FieldExt    = "%(ext)s"
)

// BestAudioFormat is the format filter, formatted with the container extension.
const BestAudioFormat = "bestaudio[ext=%s]"
