// Package metadata reads tags back from finished files.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"songdl/internal/domain/logger"
	"songdl/internal/models"

	"github.com/simonhull/audiometa"
)

// ErrTagMismatch is returned when a file's tags differ from the parsed track.
var ErrTagMismatch = errors.New("container tags do not match track")

// readableExts are the containers audiometa has a tag parser for.
var readableExts = map[string]bool{
	"flac": true,
	"m4a":  true,
	"mp3":  true,
	"ogg":  true,
}

// CanVerify reports whether the tags of path can be read back.
func CanVerify(path string) bool {
	return readableExts[strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))]
}

// VerifyTags reopens path and checks its artist and album against t.
//
// Containers without a tag parser are skipped. For every other container an
// unreadable file is an error, including one whose contents are not audio at all.
func VerifyTags(ctx context.Context, path string, t *models.Track) error {
	if !CanVerify(path) {
		logger.Pl.D(1, "Skipping tag verification for %q: no tag reader for this container", path)
		return nil
	}

	f, err := audiometa.OpenContext(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read tags from %q: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Pl.E("failed to close file %v due to error: %v", path, err)
		}
	}()

	for _, w := range f.Warnings {
		logger.Pl.D(2, "Tag read warning for %q: %s", path, w.Message)
	}
	return CompareTags(f.Tags, t)
}

// CompareTags checks artist and album in tags against t.
func CompareTags(tags audiometa.Tags, t *models.Track) error {
	if tags.Artist != t.Artist {
		return fmt.Errorf("%w: artist is %q, expected %q", ErrTagMismatch, tags.Artist, t.Artist)
	}
	if tags.Album != t.Album {
		return fmt.Errorf("%w: album is %q, expected %q", ErrTagMismatch, tags.Album, t.Album)
	}
	return nil
}
