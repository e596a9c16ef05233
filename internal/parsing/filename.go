// Package parsing recovers track metadata from downloaded filenames.
package parsing

import (
	"fmt"
	"path/filepath"
	"strings"

	"songdl/internal/domain/consts"
	"songdl/internal/domain/errconsts"
	"songdl/internal/models"
)

// ParseTrackFilename splits an "<artist>‎<title>‎<album>.<ext>" filename into a Track.
//
// Fields are trimmed. A missing artist or album (written as "NA", or empty) becomes "-".
// The title is kept as-is and must not be empty.
func ParseTrackFilename(name string) (*models.Track, error) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return nil, fmt.Errorf("%w: %q has no extension", errconsts.ErrMalformedFilename, base)
	}

	fields := strings.Split(strings.TrimSuffix(base, ext), consts.FieldDelimiter)
	if len(fields) != consts.FieldCount {
		return nil, fmt.Errorf("%w: %q has %d fields, expected %d",
			errconsts.ErrMalformedFilename, base, len(fields), consts.FieldCount)
	}

	title := strings.TrimSpace(fields[1])
	if title == "" {
		return nil, fmt.Errorf("%w: %q has an empty title", errconsts.ErrMalformedFilename, base)
	}

	return &models.Track{
		Artist:     normalizeMissing(fields[0]),
		Title:      title,
		Album:      normalizeMissing(fields[2]),
		SourcePath: name,
	}, nil
}

// TrackFilename renders a Track back into the downloader's naming convention.
func TrackFilename(t *models.Track, ext string) string {
	return strings.Join([]string{t.Artist, t.Title, t.Album}, consts.FieldDelimiter) + "." + strings.TrimPrefix(ext, ".")
}

// OutputFilename returns the final "<title>.<ext>" name, safe to join onto a directory.
func OutputFilename(title, ext string) string {
	stem := strings.NewReplacer("/", "_", "\\", "_", "\x00", "").Replace(title)
	if stem == "." || stem == ".." {
		stem = "_" + stem
	}
	return stem + "." + strings.TrimPrefix(ext, ".")
}

// normalizeMissing trims a field and maps the downloader's missing-field token to a dash.
func normalizeMissing(field string) string {
	f := strings.TrimSpace(field)
	if f == "" || f == consts.MissingFieldToken {
		return consts.MissingFieldValue
	}
	return f
}
