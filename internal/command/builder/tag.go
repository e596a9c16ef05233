package command

import (
	"context"
	"os/exec"

	"songdl/internal/domain/command"
	"songdl/internal/domain/logger"
	"songdl/internal/models"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// TagCommandBuilder builds the muxer invocation rewriting a file's artist and album.
type TagCommandBuilder struct {
	MuxerPath string
}

// NewTagCommandBuilder returns a builder for the given muxer executable.
func NewTagCommandBuilder(muxerPath string) *TagCommandBuilder {
	if muxerPath == "" {
		muxerPath = command.FFmpeg
	}
	return &TagCommandBuilder{
		MuxerPath: muxerPath,
	}
}

// Args returns the muxer arguments copying src into dst with new artist/album tags.
//
// Streams are copied, never re-encoded.
func (b *TagCommandBuilder) Args(src, dst string, t *models.Track) []string {
	kwargs := ffmpeg.KwArgs{
		command.CodecFlag: command.CodecCopy,
		command.MetadataFlag: []string{
			command.MetaArtist + "=" + t.Artist,
			command.MetaAlbum + "=" + t.Album,
		},
	}

	args := ffmpeg.Input(src).
		Output(dst, kwargs).
		OverWriteOutput().
		GetArgs()

	logger.Pl.D(2, "Built muxer argument list: %v", args)
	return args
}

// TagCommand returns the muxer command for one file.
func (b *TagCommandBuilder) TagCommand(ctx context.Context, src, dst string, t *models.Track) *exec.Cmd {
	return exec.CommandContext(ctx, b.MuxerPath, b.Args(src, dst, t)...)
}
