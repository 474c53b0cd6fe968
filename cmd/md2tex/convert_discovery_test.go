package main

// Notes:
// - discoverFiles: single file, output file targets, directory mirroring.
// - resolveWorkers: bounds only; the GOMAXPROCS value depends on the host.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-md2tex/internal/logging"
)

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output path derivation
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		output  string
		baseDir string
		want    string
	}{
		{"next to input", filepath.Join("docs", "a.md"), "", "", filepath.Join("docs", "a.tex")},
		{"markdown extension", "notes.markdown", "", "", "notes.tex"},
		{"into directory", filepath.Join("docs", "a.md"), "out", "", filepath.Join("out", "a.tex")},
		{"mirror tree", filepath.Join("docs", "sub", "b.md"), "out", "docs", filepath.Join("out", "sub", "b.tex")},
		{"mirror root", filepath.Join("docs", "c.md"), "out", "docs", filepath.Join("out", "c.tex")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputPath(tt.input, tt.output, tt.baseDir); got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - File discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	t.Run("single file to output file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, filepath.Join(dir, "doc.md"), "x")
		out := filepath.Join(dir, "paper.tex")

		files, err := discoverFiles(in, out, logging.Discard())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 1 || files[0].OutputPath != out {
			t.Errorf("files = %+v", files)
		}
	})

	t.Run("non-tex output file gets extension and warning", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, filepath.Join(dir, "doc.md"), "x")
		var logs strings.Builder
		logger := logging.NewWithWriter(&logs, "warn")

		files, err := discoverFiles(in, filepath.Join(dir, "paper.txt"), logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := filepath.Join(dir, "paper.txt.tex"); files[0].OutputPath != want {
			t.Errorf("OutputPath = %q, want %q", files[0].OutputPath, want)
		}
		if !strings.Contains(logs.String(), "appending") {
			t.Errorf("expected warning, got %q", logs.String())
		}
	})

	t.Run("existing directory with dot is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, filepath.Join(dir, "doc.md"), "x")
		outDir := filepath.Join(dir, "build.v1")
		if err := os.Mkdir(outDir, 0o750); err != nil {
			t.Fatal(err)
		}

		files, err := discoverFiles(in, outDir, logging.Discard())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := filepath.Join(outDir, "doc.tex"); files[0].OutputPath != want {
			t.Errorf("OutputPath = %q, want %q", files[0].OutputPath, want)
		}
	})

	t.Run("directory walk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "in", "a.md"), "a")
		writeFile(t, filepath.Join(dir, "in", "sub", "b.markdown"), "b")
		writeFile(t, filepath.Join(dir, "in", "notes.txt"), "skip")

		files, err := discoverFiles(filepath.Join(dir, "in"), filepath.Join(dir, "out"), logging.Discard())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("found %d files, want 2: %+v", len(files), files)
		}
		want := map[string]bool{
			filepath.Join(dir, "out", "a.tex"):        true,
			filepath.Join(dir, "out", "sub", "b.tex"): true,
		}
		for _, f := range files {
			if !want[f.OutputPath] {
				t.Errorf("unexpected output %q", f.OutputPath)
			}
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, filepath.Join(t.TempDir(), "doc.txt"), "x")
		_, err := discoverFiles(in, "", logging.Discard())
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(t.TempDir(), "none.md"), "", logging.Discard())
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWorkers - Worker count validation and resolution
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, MaxWorkers} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) = %v", n, err)
		}
	}
	for _, n := range []int{-1, MaxWorkers + 1} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		explicit int
		files    int
		want     int
	}{
		{"explicit", 3, 10, 3},
		{"capped by files", 8, 2, 2},
		{"single file auto", 0, 1, 1},
		{"never zero", 4, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveWorkers(tt.explicit, tt.files); got != tt.want {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d", tt.explicit, tt.files, got, tt.want)
			}
		})
	}

	if got := resolveWorkers(0, 1000); got < 1 || got > MaxWorkers {
		t.Errorf("auto workers = %d, want within [1, %d]", got, MaxWorkers)
	}
}
