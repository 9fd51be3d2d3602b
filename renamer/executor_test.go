package renamer

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

func exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatal(err)
	}
	return ok
}

func TestExecute(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/media/S1E1_video.mkv")

	plans := []PlannedRename{
		{OldPath: "/media/S1E1_video.mkv", NewPath: "/media/MyShow - S01E01.mkv"},
	}
	if err := Execute(fs, plans, false, log.New(io.Discard)); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if exists(t, fs, "/media/S1E1_video.mkv") {
		t.Error("original file still present after rename")
	}
	if !exists(t, fs, "/media/MyShow - S01E01.mkv") {
		t.Error("renamed file missing")
	}
}

func TestExecuteDryRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/media/S1E1_video.mkv")

	plans := []PlannedRename{
		{OldPath: "/media/S1E1_video.mkv", NewPath: "/media/MyShow - S01E01.mkv"},
	}
	if err := Execute(fs, plans, true, log.New(io.Discard)); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if !exists(t, fs, "/media/S1E1_video.mkv") {
		t.Error("dry run must not touch the filesystem")
	}
	if exists(t, fs, "/media/MyShow - S01E01.mkv") {
		t.Error("dry run created the new file")
	}
}

func TestExecuteContinuesAfterFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "/media/S1E2_video.mkv")

	plans := []PlannedRename{
		{OldPath: "/media/missing.mkv", NewPath: "/media/a.mkv"},
		{OldPath: "/media/S1E2_video.mkv", NewPath: "/media/MyShow - S01E02.mkv"},
	}

	err := Execute(fs, plans, false, log.New(io.Discard))
	if err == nil {
		t.Error("Execute() should report the failed rename")
	}
	if !exists(t, fs, "/media/MyShow - S01E02.mkv") {
		t.Error("a failed rename must not stop the rest of the batch")
	}
}
