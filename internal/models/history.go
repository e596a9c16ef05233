package models

import "time"

// RunRecord is a stored run from the history database.
type RunRecord struct {
	ID            int64
	PlaylistURL   string
	Site          string
	DownloadError string
	ScanError     string
	Succeeded     int
	Failed        int
	Skipped       int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// TrackRecord is a stored per-file result from the history database.
type TrackRecord struct {
	ID         int64
	RunID      int64
	SourceFile string
	Artist     string
	Title      string
	Album      string
	OutputPath string
	Status     TrackStatus
	Error      string
}
