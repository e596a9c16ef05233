// Package file contains utilities related to file operations (e.g. scanning and moving files).
package file

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"songdl/internal/domain/consts"
	"songdl/internal/domain/logger"
)

// ScanAudioFiles lists the regular files in dir ending in "."+ext, sorted by name.
//
// songdl's own in-flight temporary files and the downloader's leftover
// ".temp.<ext>" intermediates are skipped.
func ScanAudioFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	suffix := "." + strings.ToLower(strings.TrimPrefix(ext, "."))

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(name), suffix) {
			continue
		}
		if IsTempFile(name) || strings.HasSuffix(strings.ToLower(name), consts.DownloaderTempTag+suffix) {
			logger.Pl.D(2, "Skipping temporary file %q", name)
			continue
		}
		files = append(files, name)
	}

	slices.Sort(files)
	logger.Pl.D(1, "Found %d %s files in %q", len(files), suffix, dir)
	return files, nil
}

// IsTempFile reports whether name is one of songdl's temporary tagging outputs.
func IsTempFile(name string) bool {
	return strings.HasPrefix(name, consts.TempTag)
}
