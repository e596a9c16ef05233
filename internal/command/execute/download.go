// Package command runs songdl's external programs.
package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"sync"

	"songdl/internal/domain/errconsts"
	"songdl/internal/domain/logger"
)

const maxLineSize = 1024 * 1024

// RunDownload starts cmd in the background and calls onComplete once it has exited.
//
// onComplete receives the start or exit error, or nil on success, and is always called.
// The returned channel is closed after onComplete returns.
func RunDownload(cmd *exec.Cmd, onComplete func(err error)) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		onComplete(runStreaming(cmd))
	}()

	return done
}

// runStreaming runs cmd to completion, logging its output line by line.
func runStreaming(cmd *exec.Cmd) error {
	if cmd == nil {
		return errors.New("download command is nil")
	}

	// Create pipes for stdout and stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	logger.Pl.I("Executing download command: %s", cmd.String())
	if err := cmd.Start(); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %w", errconsts.ErrDownloaderNotFound, err)
		}
		return fmt.Errorf("failed to start download: %w", err)
	}

	// Pipes must be drained before Wait
	var wg sync.WaitGroup
	wg.Add(2)
	go scanLines(&wg, stdout, func(line string) { logger.Pl.P("%s", line) })
	go scanLines(&wg, stderr, func(line string) { logger.Pl.W("%s", line) })
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf(errconsts.YTDLPFailure, err)
	}
	return nil
}

// scanLines passes each line of r to emit until r is exhausted.
func scanLines(wg *sync.WaitGroup, r io.Reader, emit func(string)) {
	defer wg.Done()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		emit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Pl.E("Scanner error: %v", err)
		// Keep draining so the child never blocks on a full pipe
		_, _ = io.Copy(io.Discard, r)
	}
}

// isNotFound reports whether a start error means the executable is missing.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
