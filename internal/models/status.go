package models

import (
	"time"
)

// TrackStatus is the outcome of processing one file.
type TrackStatus string

const (
	TrackOK      TrackStatus = "ok"
	TrackFailed  TrackStatus = "failed"
	TrackSkipped TrackStatus = "skipped"
)

// Result holds the outcome of one file.
type Result struct {
	SourceFile string
	Track      *Track // nil when the filename could not be parsed
	OutputPath string
	Status     TrackStatus
	Err        error
}

// Summary holds the outcome of one run.
type Summary struct {
	PlaylistURL   string
	Site          string
	DownloadError error
	ScanError     error
	Results       []*Result
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Counts returns how many results ended in each status.
func (s *Summary) Counts() (ok, failed, skipped int) {
	for _, r := range s.Results {
		switch r.Status {
		case TrackOK:
			ok++
		case TrackFailed:
			failed++
		case TrackSkipped:
			skipped++
		}
	}
	return ok, failed, skipped
}

// Failed returns the results that did not succeed.
func (s *Summary) Failed() []*Result {
	var out []*Result
	for _, r := range s.Results {
		if r.Status != TrackOK {
			out = append(out, r)
		}
	}
	return out
}
