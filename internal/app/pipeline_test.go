package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"songdl/internal/app"
	"songdl/internal/domain/errconsts"
	"songdl/internal/models"
)

const fakeMuxer = `in=""; out=""
while [ $# -gt 0 ]; do
  case "$1" in
    -i) in="$2"; shift 2 ;;
    -codec|-c|-metadata) shift 2 ;;
    -*) shift ;;
    *) out="$1"; shift ;;
  esac
done
cp "$in" "$out"`

type recorder struct {
	runs []*models.Summary
}

func (r *recorder) RecordRun(s *models.Summary) (int64, error) {
	r.runs = append(r.runs, s)
	return int64(len(r.runs)), nil
}

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes need a POSIX shell")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func newSettings(t *testing.T, downloaderBody string) *models.Settings {
	t.Helper()
	root := t.TempDir()
	bin := filepath.Join(root, "bin")
	work := filepath.Join(root, "work")
	for _, d := range []string{bin, work} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	return &models.Settings{
		PlaylistURL:    "https://www.youtube.com/playlist?list=PL123",
		Site:           "youtube.com",
		DownloaderPath: writeScript(t, bin, "yt-dlp", downloaderBody),
		MuxerPath:      writeScript(t, bin, "ffmpeg", fakeMuxer),
		OutputDir:      filepath.Join(root, "out", "songs"),
		WorkDir:        work,
		AudioExt:       "m4a",
		Concurrency:    1,
	}
}

func TestPipelineRun_ProcessesAfterFailedDownload(t *testing.T) {
	s := newSettings(t, `printf 'audio' > "Artist‎Song‎Album.m4a"
printf 'bad' > "bad.m4a"
printf 'txt' > "notes.txt"
echo "ERROR: one video unavailable" >&2
exit 1`)

	rec := &recorder{}
	p := app.NewPipeline(s)
	p.History = rec

	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.DownloadError == nil {
		t.Error("expected the downloader's non-zero exit to be recorded")
	}
	if len(summary.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(summary.Results))
	}

	good, bad := summary.Results[0], summary.Results[1]
	if good.Status != models.TrackOK {
		t.Fatalf("first result status = %s (%v), want ok", good.Status, good.Err)
	}
	want := filepath.Join(s.OutputDir, "Song.m4a")
	if good.OutputPath != want {
		t.Errorf("OutputPath = %q, want %q", good.OutputPath, want)
	}
	data, err := os.ReadFile(want)
	if err != nil || string(data) != "audio" {
		t.Errorf("output file = %q, %v", data, err)
	}
	if _, err := os.Stat(filepath.Join(s.WorkDir, "Artist‎Song‎Album.m4a")); !os.IsNotExist(err) {
		t.Errorf("original should have been deleted, stat err = %v", err)
	}

	if bad.Status != models.TrackFailed || !errors.Is(bad.Err, errconsts.ErrMalformedFilename) {
		t.Errorf("second result = %s / %v, want failed malformed", bad.Status, bad.Err)
	}
	if _, err := os.Stat(filepath.Join(s.WorkDir, "bad.m4a")); err != nil {
		t.Errorf("malformed file should be left in place: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.WorkDir, "notes.txt")); err != nil {
		t.Errorf("non-audio file should be untouched: %v", err)
	}

	if len(rec.runs) != 1 || rec.runs[0] != summary {
		t.Errorf("expected the summary to be recorded once, got %d", len(rec.runs))
	}
	if summary.FinishedAt.Before(summary.StartedAt) {
		t.Error("FinishedAt before StartedAt")
	}
}

func TestPipelineRun_MissingDownloaderStillScans(t *testing.T) {
	s := newSettings(t, "exit 0")
	s.DownloaderPath = filepath.Join(t.TempDir(), "missing", "yt-dlp")

	if err := os.WriteFile(filepath.Join(s.WorkDir, "NA‎Left Over‎NA.m4a"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, err := app.NewPipeline(s).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !errors.Is(summary.DownloadError, errconsts.ErrDownloaderNotFound) {
		t.Errorf("DownloadError = %v, want ErrDownloaderNotFound", summary.DownloadError)
	}
	if len(summary.Results) != 1 || summary.Results[0].Status != models.TrackOK {
		t.Fatalf("unexpected results: %+v", summary.Results)
	}
	tr := summary.Results[0].Track
	if tr.Artist != "-" || tr.Album != "-" || tr.Title != "Left Over" {
		t.Errorf("unexpected track: %+v", tr)
	}
}

func TestPipelineRun_ScanErrorAbortsPostProcessing(t *testing.T) {
	s := newSettings(t, "exit 0")
	s.WorkDir = filepath.Join(t.TempDir(), "does-not-exist")

	summary, err := app.NewPipeline(s).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.ScanError == nil {
		t.Error("expected a scan error")
	}
	if len(summary.Results) != 0 {
		t.Errorf("expected no results, got %d", len(summary.Results))
	}
}

func TestPipelineRun_NoURL(t *testing.T) {
	s := newSettings(t, "exit 0")
	s.PlaylistURL = ""

	if _, err := app.NewPipeline(s).Run(context.Background()); !errors.Is(err, errconsts.ErrNoURL) {
		t.Fatalf("Run error = %v, want ErrNoURL", err)
	}
}

func TestPipelineRun_CreatesOutputDir(t *testing.T) {
	s := newSettings(t, "exit 0")

	if _, err := app.NewPipeline(s).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	info, err := os.Stat(s.OutputDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected output dir to exist: %v", err)
	}
}
