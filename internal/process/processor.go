// Package process runs the per-file tagging jobs after a download completes.
package process

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"songdl/internal/domain/consts"
	"songdl/internal/domain/errconsts"
	"songdl/internal/domain/logger"
	"songdl/internal/file"
	"songdl/internal/models"
	"songdl/internal/parsing"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Tagger writes a copy of src to dst with the track's artist and album tags.
type Tagger interface {
	Tag(ctx context.Context, src, dst string, t *models.Track) error
}

// Verifier checks the tags of a finished file.
type Verifier func(ctx context.Context, path string, t *models.Track) error

// TrackProcessor tags, moves and deletes downloaded files.
type TrackProcessor struct {
	settings *models.Settings
	tagger   Tagger
	verify   Verifier
	tempName func(ext string) string
}

// NewTrackProcessor returns a processor using the given tagger.
func NewTrackProcessor(s *models.Settings, t Tagger) *TrackProcessor {
	return &TrackProcessor{
		settings: s,
		tagger:   t,
		tempName: uniqueTempName,
	}
}

// WithVerifier sets a check run on every finished file. Failures are logged as warnings.
func (p *TrackProcessor) WithVerifier(v Verifier) *TrackProcessor {
	p.verify = v
	return p
}

// ProcessFiles processes each file in the working directory, returning one result per name in input order.
//
// At most Concurrency files are in flight; with the default of 1 each file is fully tagged,
// moved and deleted before the next begins. A failed file never stops the others unless
// FailFast is set, in which case every later file is skipped.
func (p *TrackProcessor) ProcessFiles(ctx context.Context, names []string) []*models.Result {
	results := make([]*models.Result, len(names))
	if len(names) == 0 {
		return results
	}

	var (
		aborted atomic.Bool
		g       errgroup.Group
	)
	g.SetLimit(max(1, p.settings.Concurrency))

	for i, name := range names {
		g.Go(func() error {
			switch {
			case aborted.Load():
				results[i] = skipped(name, errconsts.ErrAborted)
				return nil
			case ctx.Err() != nil:
				results[i] = skipped(name, ctx.Err())
				return nil
			}

			r := p.processFile(ctx, name)
			if r.Status == models.TrackFailed && p.settings.FailFast {
				aborted.Store(true)
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// processFile runs one file through parse, tag, move and delete.
func (p *TrackProcessor) processFile(ctx context.Context, name string) *models.Result {
	r := &models.Result{SourceFile: name}
	src := filepath.Join(p.settings.WorkDir, name)

	track, err := parsing.ParseTrackFilename(src)
	if err != nil {
		return failed(r, err)
	}
	r.Track = track
	logger.Pl.I("Title: %s, Artist: %s, Album: %s", track.Title, track.Artist, track.Album)

	ext := strings.TrimPrefix(p.settings.AudioExt, ".")
	temp := filepath.Join(p.settings.WorkDir, p.tempName(ext))

	if err := p.tagger.Tag(ctx, src, temp, track); err != nil {
		p.removeTemp(temp)
		return failed(r, fmt.Errorf("failed to tag %q: %w", name, err))
	}

	dst := filepath.Join(p.settings.OutputDir, parsing.OutputFilename(track.Title, ext))
	if _, err := os.Stat(dst); err == nil {
		logger.Pl.W("Overwriting existing file %q", dst)
	}
	if err := file.MoveFile(temp, dst); err != nil {
		p.removeTemp(temp)
		return failed(r, err)
	}
	r.OutputPath = dst

	if err := file.RemoveFile(src); err != nil {
		return failed(r, err)
	}

	if p.verify != nil {
		if err := p.verify(ctx, dst, track); err != nil {
			logger.Pl.W("Tag verification failed for %q: %v", dst, err)
		}
	}

	r.Status = models.TrackOK
	logger.Pl.S("Saved %q", dst)
	return r
}

// removeTemp deletes a leftover temporary file.
func (p *TrackProcessor) removeTemp(temp string) {
	if err := file.RemoveFile(temp); err != nil {
		logger.Pl.E("Failed to clean up temporary file: %v", err)
	}
}

// uniqueTempName returns a temp filename no other job can collide with.
func uniqueTempName(ext string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return consts.TempTag + uuid.NewString() + "." + ext
	}
	return consts.TempTag + id.String() + "." + ext
}

func failed(r *models.Result, err error) *models.Result {
	r.Status = models.TrackFailed
	r.Err = err
	logger.Pl.E("Failed to process %q: %v", r.SourceFile, err)
	return r
}

func skipped(name string, err error) *models.Result {
	logger.Pl.D(1, "Skipping %q: %v", name, err)
	return &models.Result{SourceFile: name, Status: models.TrackSkipped, Err: err}
}
