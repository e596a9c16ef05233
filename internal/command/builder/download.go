package command

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"songdl/internal/domain/command"
	"songdl/internal/domain/consts"
	"songdl/internal/domain/errconsts"
	"songdl/internal/domain/logger"
	"songdl/internal/models"
)

// DownloadCommandBuilder builds the downloader invocation for a playlist.
type DownloadCommandBuilder struct {
	Settings *models.Settings
}

// NewDownloadCommandBuilder returns a builder for the given settings.
func NewDownloadCommandBuilder(s *models.Settings) *DownloadCommandBuilder {
	return &DownloadCommandBuilder{
		Settings: s,
	}
}

// OutputTemplate is the downloader's output filename template.
//
// The three fields are joined by the delimiter so they can be split apart again.
func OutputTemplate() string {
	return strings.Join([]string{command.FieldArtist, command.FieldTitle, command.FieldAlbum}, consts.FieldDelimiter) +
		"." + command.FieldExt
}

// Args returns the downloader's argument list.
func (b *DownloadCommandBuilder) Args() ([]string, error) {
	s := b.Settings
	if s == nil {
		return nil, fmt.Errorf("settings passed in nil, returning no command")
	}
	if s.PlaylistURL == "" {
		return nil, errconsts.ErrNoURL
	}

	args := make([]string, 0, 24)
	args = append(args, s.PlaylistURL)
	args = append(args, command.Format, fmt.Sprintf(command.BestAudioFormat, s.AudioExt))

	if s.EmbedThumbnail {
		args = append(args, command.EmbedThumbnail, command.ConvertThumbnail, command.ThumbnailFormat)
		if s.CropThumbnail {
			args = append(args, cropHooks(s.MuxerPath)...)
		}
	}

	args = append(args, command.Output, OutputTemplate())

	if s.CookieFile != "" {
		args = append(args, command.CookiePath, s.CookieFile)
	} else if s.CookieSource != "" {
		args = append(args, command.CookiesFromBrowser, s.CookieSource)
	}

	if s.Retries > 0 {
		args = append(args, command.Retries, strconv.Itoa(s.Retries))
	}

	if len(s.ExtraArgs) > 0 {
		args = append(args, s.ExtraArgs...)
	}

	logger.Pl.D(1, "Built argument list: %v", args)
	return args, nil
}

// String returns the full command as a single shell-interpretable line.
func (b *DownloadCommandBuilder) String() string {
	args, err := b.Args()
	if err != nil {
		return ""
	}
	return ShellJoin(append([]string{b.downloader()}, args...))
}

// DownloadCommand returns the command, run from the working directory.
//
// A missing executable is reported when the command starts.
func (b *DownloadCommandBuilder) DownloadCommand(ctx context.Context) (*exec.Cmd, error) {
	args, err := b.Args()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, b.downloader(), args...)
	cmd.Dir = b.Settings.WorkDir
	return cmd, nil
}

func (b *DownloadCommandBuilder) downloader() string {
	if b.Settings == nil || b.Settings.DownloaderPath == "" {
		return command.YTDLP
	}
	return b.Settings.DownloaderPath
}

// cropHooks returns the pre-download hooks squaring the thumbnail in place.
func cropHooks(muxer string) []string {
	if muxer == "" {
		muxer = command.FFmpeg
	}
	cropped := command.CroppedPrefix + command.ThumbnailPath

	crop := fmt.Sprintf(`%s %s %s %s "%s" %s`,
		ShellQuote(muxer), command.InputFlag, command.ThumbnailPath, command.VideoFilter, command.SquareCrop, cropped)
	remove := "rm " + command.ThumbnailPath
	rename := fmt.Sprintf("mv %s %s", cropped, command.ThumbnailPath)

	return []string{
		command.ExecBeforeDownload, crop,
		command.ExecBeforeDownload, remove,
		command.ExecBeforeDownload, rename,
	}
}
