package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2tex/internal/fileutil"
	"github.com/alnah/go-md2tex/internal/logging"
)

// MaxWorkers bounds --workers.
const MaxWorkers = 64

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert.
// A single input may target an output file; a directory input mirrors its
// tree under output.
func discoverFiles(inputPath, output string, logger *log.Logger) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		if isFileTarget(output) {
			outPath, appended := fileutil.EnsureExtension(output, fileutil.TeXExtension)
			if appended {
				logger.Warn("output file lacks .tex extension, appending it", logging.FieldOutput, outPath)
			}
			return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, output, "")}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, output, inputPath),
		})
		return nil
	})

	return files, err
}

// isFileTarget reports whether output names a file rather than a directory:
// it has an extension and is not an existing directory.
func isFileTarget(output string) bool {
	return output != "" && filepath.Ext(output) != "" && !fileutil.DirExists(output)
}

// resolveOutputPath determines the .tex output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	name := fileutil.ReplaceExtension(filepath.Base(inputPath), fileutil.TeXExtension)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers picks the worker count for a batch of n files.
// An explicit count wins; otherwise GOMAXPROCS (set by automaxprocs) is used.
// The result never exceeds n nor drops below 1.
func resolveWorkers(explicit, n int) int {
	workers := explicit
	if workers <= 0 {
		workers = min(runtime.GOMAXPROCS(0), MaxWorkers)
	}
	return max(1, min(workers, n))
}
