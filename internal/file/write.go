package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"songdl/internal/domain/consts"
	"songdl/internal/domain/logger"
)

// MoveFile moves src to dst, falling back to copy and remove across filesystems.
//
// An existing dst is replaced.
func MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), consts.PermsOutputDir); err != nil {
		return fmt.Errorf("failed to create directory for %q: %w", dst, err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("failed to move %q to %q: %w", src, dst, err)
	}

	logger.Pl.D(2, "Cross-device move for %q, copying instead", src)
	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("copied %q but failed to remove it: %w", src, err)
	}
	return nil
}

// RemoveFile deletes path, treating a missing file as already removed.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %q: %w", path, err)
	}
	return nil
}

// copyFile copies src into a fresh dst.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", src, err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			logger.Pl.E("failed to close file %v due to error: %v", src, cerr)
		}
	}()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, consts.PermsAudioFile)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %q: %w", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %q to %q: %w", src, dst, err)
	}
	return out.Sync()
}
