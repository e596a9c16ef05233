// Package app contains core application functionality.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	build "songdl/internal/command/builder"
	execute "songdl/internal/command/execute"
	"songdl/internal/domain/logger"
	"songdl/internal/file"
	"songdl/internal/metadata"
	"songdl/internal/models"
	"songdl/internal/process"
	"songdl/internal/validation"
)

// HistoryRecorder persists a finished run.
type HistoryRecorder interface {
	RecordRun(s *models.Summary) (int64, error)
}

// Pipeline downloads a playlist and post-processes the downloaded files.
type Pipeline struct {
	Settings *models.Settings
	Tagger   process.Tagger
	History  HistoryRecorder
}

// NewPipeline returns a pipeline tagging with the configured muxer.
func NewPipeline(s *models.Settings) *Pipeline {
	return &Pipeline{
		Settings: s,
		Tagger:   execute.NewFFmpegTagger(s.MuxerPath),
	}
}

// Run downloads the playlist, then tags, moves and deletes every downloaded file.
//
// Downloader failures are logged and never stop post-processing. The returned error is
// only set for problems preventing the run from starting at all.
func (p *Pipeline) Run(ctx context.Context) (*models.Summary, error) {
	s := p.Settings
	if s == nil {
		return nil, errors.New("settings are nil")
	}

	summary := &models.Summary{
		PlaylistURL: s.PlaylistURL,
		Site:        s.Site,
		StartedAt:   time.Now(),
	}

	if _, err := validation.ValidateDirectory(s.OutputDir, true); err != nil {
		return summary, fmt.Errorf("output directory: %w", err)
	}

	builder := build.NewDownloadCommandBuilder(s)
	cmd, err := builder.DownloadCommand(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to build download command: %w", err)
	}
	logger.Pl.I("Running: %s", builder.String())

	processor := process.NewTrackProcessor(s, p.Tagger)
	if s.VerifyTags {
		processor.WithVerifier(metadata.VerifyTags)
	}

	done := execute.RunDownload(cmd, func(dlErr error) {
		if dlErr != nil {
			logger.Pl.E("Error executing command: %v (will continue regardless)", dlErr)
			summary.DownloadError = dlErr
		}

		names, err := file.ScanAudioFiles(s.WorkDir, s.AudioExt)
		if err != nil {
			logger.Pl.E("Error reading directory: %v", err)
			summary.ScanError = err
			return
		}
		logger.Pl.I("Found %d file(s) to process in %q", len(names), s.WorkDir)

		summary.Results = processor.ProcessFiles(ctx, names)
	})
	<-done

	summary.FinishedAt = time.Now()
	process.LogSummary(summary)

	if p.History != nil {
		if id, err := p.History.RecordRun(summary); err != nil {
			logger.Pl.E("Failed to record run history: %v", err)
		} else {
			logger.Pl.D(1, "Recorded run %d", id)
		}
	}

	return summary, nil
}
