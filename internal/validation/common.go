// Package validation checks user-supplied settings before the pipeline runs.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"

	"songdl/internal/domain/consts"
	"songdl/internal/domain/errconsts"
	"songdl/internal/domain/logger"

	"golang.org/x/net/publicsuffix"
)

// ValidateDirectory checks that dir is a directory, creating it if requested.
func ValidateDirectory(dir string, createIfNotFound bool) (os.FileInfo, error) {
	logger.Pl.D(3, "Statting directory %q...", dir)

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("path %q is a file, not a directory", dir)
		}
		return info, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to stat directory %q: %w", dir, err)
	case !createIfNotFound:
		return nil, fmt.Errorf("directory %q does not exist", dir)
	}

	if err := os.MkdirAll(dir, consts.PermsGenericDir); err != nil {
		return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	logger.Pl.D(1, "Created directory %q", dir)

	return os.Stat(dir)
}

// ValidateFile checks that f is a regular file, creating an empty one if requested.
func ValidateFile(f string, createIfNotFound bool) (os.FileInfo, error) {
	logger.Pl.D(3, "Statting file %q...", f)

	info, err := os.Stat(f)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil, fmt.Errorf("path %q is a directory, not a file", f)
		}
		return info, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to stat file %q: %w", f, err)
	case !createIfNotFound:
		return nil, fmt.Errorf("file %q does not exist", f)
	}

	created, err := os.OpenFile(f, os.O_CREATE|os.O_WRONLY, consts.PermsAudioFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %q: %w", f, err)
	}
	if err := created.Close(); err != nil {
		return nil, fmt.Errorf("failed to close created file %q: %w", f, err)
	}

	return os.Stat(f)
}

// ValidatePlaylistURL checks the URL is absolute http(s) and returns its registrable domain.
func ValidatePlaylistURL(raw string) (site string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errconsts.ErrNoURL
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", errconsts.ErrInvalidURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w %q: scheme must be http or https", errconsts.ErrInvalidURL, raw)
	}

	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w %q: missing host", errconsts.ErrInvalidURL, raw)
	}

	site, err = publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		// IPs and bare hosts such as localhost have no public suffix
		logger.Pl.D(2, "No registrable domain for host %q: %v", host, err)
		return host, nil
	}
	return site, nil
}

// ValidateAudioExtension checks the extension is an audio container the downloader can select.
func ValidateAudioExtension(e string) (string, error) {
	e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))

	if !slices.Contains([]string{
		"aac",
		"flac",
		"m4a",
		"mp3",
		"ogg",
		"opus",
		"wav",
		"webm",
	}, e) {
		return "", fmt.Errorf("audio extension %q is invalid or not supported", e)
	}
	return e, nil
}

// ValidateConcurrency checks the tagging concurrency limit.
func ValidateConcurrency(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("concurrency must be at least 1, got %d", n)
	}
	return n, nil
}

// ValidateLoggingLevel clamps the debug level to 0-5.
func ValidateLoggingLevel(l int) int {
	return min(max(l, 0), 5)
}
