package command

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	build "songdl/internal/command/builder"
	"songdl/internal/domain/errconsts"
	"songdl/internal/domain/logger"
	"songdl/internal/models"
)

// FFmpegTagger rewrites a file's artist and album tags with the muxer.
type FFmpegTagger struct {
	Builder *build.TagCommandBuilder
}

// NewFFmpegTagger returns a tagger running the given muxer executable.
func NewFFmpegTagger(muxerPath string) *FFmpegTagger {
	return &FFmpegTagger{
		Builder: build.NewTagCommandBuilder(muxerPath),
	}
}

// Tag writes a re-tagged copy of src to dst, blocking until the muxer exits.
func (t *FFmpegTagger) Tag(ctx context.Context, src, dst string, track *models.Track) error {
	return RunTag(t.Builder.TagCommand(ctx, src, dst, track))
}

// RunTag runs a muxer command synchronously, returning its output on failure.
func RunTag(cmd *exec.Cmd) error {
	logger.Pl.D(1, "Executing muxer command: %s", cmd.String())

	out, err := cmd.CombinedOutput()
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %w", errconsts.ErrMuxerNotFound, err)
		}
		return fmt.Errorf(errconsts.FFmpegFailure, err, strings.TrimSpace(string(out)))
	}

	logger.Pl.D(3, "Muxer output: %s", out)
	return nil
}
