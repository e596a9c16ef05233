package consts

// Tables
const (
	DBRuns         = "runs"
	DBTrackResults = "track_results"
)

// Runs
const (
	QRunID            = "id"
	QRunPlaylistURL   = "playlist_url"
	QRunSite          = "site"
	QRunDownloadError = "download_error"
	QRunScanError     = "scan_error"
	QRunSucceeded     = "succeeded"
	QRunFailed        = "failed"
	QRunSkipped       = "skipped"
	QRunStartedAt     = "started_at"
	QRunFinishedAt    = "finished_at"
)

// Track results
const (
	QTrackID         = "id"
	QTrackRunID      = "run_id"
	QTrackSourceFile = "source_file"
	QTrackArtist     = "artist"
	QTrackTitle      = "title"
	QTrackAlbum      = "album"
	QTrackOutputPath = "output_path"
	QTrackStatus     = "status"
	QTrackError      = "error"
)
