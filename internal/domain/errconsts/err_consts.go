// Package errconsts holds sentinel errors and constant error messages.
package errconsts

import "errors"

// Sentinel errors.
var (
	ErrNoURL              = errors.New("no playlist URL provided")
	ErrInvalidURL         = errors.New("invalid playlist URL")
	ErrMalformedFilename  = errors.New("filename does not match artist/title/album pattern")
	ErrDownloaderNotFound = errors.New("downloader executable not found")
	ErrMuxerNotFound      = errors.New("muxer executable not found")
	ErrAborted            = errors.New("skipped after earlier failure")
)

// Programs
const (
	YTDLPFailure  = "yt-dlp command failed: %w"
	FFmpegFailure = "ffmpeg command failed: %w\n%s"
)
