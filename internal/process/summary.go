package process

import (
	"songdl/internal/domain/logger"
	"songdl/internal/models"
)

// LogSummary logs the outcome of a run.
func LogSummary(s *models.Summary) {
	ok, failedCount, skippedCount := s.Counts()

	if s.DownloadError != nil {
		logger.Pl.W("Downloader reported an error: %v", s.DownloadError)
	}
	if s.ScanError != nil {
		logger.Pl.E("Post-processing aborted: %v", s.ScanError)
		return
	}

	if len(s.Results) == 0 {
		logger.Pl.I("No downloaded files found to process")
		return
	}

	logger.Pl.I("Processed %d file(s): %d succeeded, %d failed, %d skipped",
		len(s.Results), ok, failedCount, skippedCount)

	for _, r := range s.Failed() {
		logger.Pl.W("  %s [%s]: %v", r.SourceFile, r.Status, r.Err)
	}
}
