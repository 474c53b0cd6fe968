package main

import (
	"errors"
	"os"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/config"
	"github.com/alnah/go-md2tex/internal/dateutil"
)

// Exit codes for md2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or template
	ExitIO         = 3 // File not found, permission denied
	ExitConversion = 4 // Markdown the converter rejects
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, md2tex.ErrIndentation) {
		return ExitConversion
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrWriteTeX) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2tex.ErrEmptyMarkdown) ||
		errors.Is(err, md2tex.ErrInvalidQuoteStyle) ||
		errors.Is(err, md2tex.ErrInvalidFootnoteStyle) ||
		errors.Is(err, md2tex.ErrInvalidHeaderNumbering) ||
		errors.Is(err, md2tex.ErrInvalidLanguage) ||
		errors.Is(err, md2tex.ErrTemplateNoBody) ||
		errors.Is(err, md2tex.ErrTemplateNotFound) ||
		errors.Is(err, md2tex.ErrInvalidAssetPath) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
