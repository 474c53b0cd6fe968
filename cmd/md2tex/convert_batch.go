package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/fileutil"
	"github.com/alnah/go-md2tex/internal/logging"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteTeX     = errors.New("failed to write TeX file")
)

// TeXConverter is the interface for the conversion service.
type TeXConverter interface {
	Convert(ctx context.Context, input md2tex.Input) (*md2tex.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ TeXConverter = (*md2tex.Converter)(nil)

// conversionParams groups what every file in a batch shares.
type conversionParams struct {
	converter TeXConverter
	template  string // document shell; empty writes the body only
	date      string // resolved template date
	workers   int
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Stats      md2tex.Stats
	Err        error
	Duration   time.Duration
}

// BatchError reports failed conversions. It unwraps to the first failure
// so exit codes follow the most relevant cause.
type BatchError struct {
	Failed int
	Total  int
	First  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d of %d conversion(s) failed", e.Failed, e.Total)
}

func (e *BatchError) Unwrap() error {
	return e.First
}

// convertBatch converts files concurrently. Each file is independent; once
// ctx is done, files not yet started are reported with ctx.Err().
func convertBatch(ctx context.Context, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < resolveWorkers(params.workers, len(files)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	converted, err := params.converter.Convert(ctx, md2tex.Input{Markdown: string(content)})
	if err != nil {
		return fail(err)
	}
	result.Stats = converted.Stats

	tex := converted.TeX
	if params.template != "" {
		if tex, err = md2tex.ApplyTemplate(params.template, converted, md2tex.WithDate(params.date)); err != nil {
			return fail(err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: creating output directory: %v", ErrWriteTeX, err))
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, tex, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteTeX, err))
	}

	logging.FromContext(ctx).Debug("file converted",
		logging.FieldInput, f.InputPath,
		logging.FieldOutput, f.OutputPath,
		logging.FieldElapsed, time.Since(start),
	)

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	First     error
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err == nil {
			summary.Succeeded++
			continue
		}
		summary.Failed++
		if summary.First == nil {
			summary.First = r.Err
		}
	}
	return summary
}

// printResults outputs conversion results and returns the tally.
func printResults(results []ConversionResult, flags *convertFlags, env *Environment) ResultSummary {
	summary := countResults(results)
	quiet, verbose := flags.common.quiet, flags.common.verbose

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %s\n", r.InputPath, describeError(r.Err, flags))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
			fmt.Fprintf(env.Stdout, "  %s\n", formatStats(r.Stats))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}

// formatStats renders conversion statistics on one line.
func formatStats(s md2tex.Stats) string {
	return fmt.Sprintf("code blocks: %d highlighted, %d verbatim; lists: %d; footnotes: %d resolved, %d dropped",
		s.Highlighted, s.Verbatim, s.Lists, s.FootnotesResolved, s.FootnotesDropped)
}
