package file_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"songdl/internal/file"
)

func touch(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %q: %v", path, err)
	}
}

func TestScanAudioFiles(t *testing.T) {
	dir := t.TempDir()

	touch(t, filepath.Join(dir, "b‎Song‎Album.m4a"), "b")
	touch(t, filepath.Join(dir, "a‎Song‎Album.M4A"), "a")
	touch(t, filepath.Join(dir, "cover.jpg"), "jpg")
	touch(t, filepath.Join(dir, "partial.m4a.part"), "part")
	touch(t, filepath.Join(dir, ".songdl-0192.m4a"), "temp")
	touch(t, filepath.Join(dir, "c‎Song‎Album.temp.m4a"), "intermediate")
	touch(t, filepath.Join(dir, "d‎Song‎Album.TEMP.M4A"), "intermediate")
	if err := os.Mkdir(filepath.Join(dir, "folder.m4a"), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	got, err := file.ScanAudioFiles(dir, "m4a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a‎Song‎Album.M4A", "b‎Song‎Album.m4a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ScanAudioFiles = %q, want %q", got, want)
	}
}

func TestScanAudioFiles_MissingDir(t *testing.T) {
	if _, err := file.ScanAudioFiles(filepath.Join(t.TempDir(), "nope"), "m4a"); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.m4a")
	dst := filepath.Join(dir, "out", "nested", "Title.m4a")
	touch(t, src, "audio")

	if err := file.MoveFile(src, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source should be gone, stat err = %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "audio" {
		t.Fatalf("destination content = %q, err = %v", data, err)
	}
}

func TestMoveFile_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.m4a")
	dst := filepath.Join(dir, "Title.m4a")
	touch(t, src, "new")
	touch(t, dst, "old")

	if err := file.MoveFile(src, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "new" {
		t.Fatalf("expected replaced content, got %q", data)
	}
}

func TestRemoveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.m4a")
	touch(t, path, "x")

	if err := file.RemoveFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := file.RemoveFile(path); err != nil {
		t.Fatalf("removing a missing file should be a no-op, got %v", err)
	}
}

func TestIsTempFile(t *testing.T) {
	if !file.IsTempFile(".songdl-abc.m4a") {
		t.Fatalf("expected temp prefix to match")
	}
	if file.IsTempFile("songdl-abc.m4a") {
		t.Fatalf("expected plain name not to match")
	}
}
