package pipeline

import (
	"regexp"
	"strings"
)

// Reserved runes from the Unicode Private Use Area. They never reach the
// output: tokens and environment markers are consumed by reinjection, and
// user occurrences are escaped on entry and restored on exit.
const (
	tokenStart   = "\uE000" // U+E000: protected region token start
	tokenEnd     = "\uE001" // U+E001: protected region token end
	reservedMark = "\uE002" // U+E002: prefix of an escaped reserved rune
	envStart     = "\uE003" // U+E003: start of a generated environment
	envEnd       = "\uE004" // U+E004: end of a generated environment
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Lines holding only spaces or tabs
	whitespaceOnlyLine = regexp.MustCompile(`(?m)^[ \t]+$`)

	// Compress multiple blank lines to a single blank line
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

var (
	reservedEscaper = strings.NewReplacer(
		reservedMark, reservedMark+"c",
		tokenStart, reservedMark+"a",
		tokenEnd, reservedMark+"b",
		envStart, reservedMark+"d",
		envEnd, reservedMark+"e",
	)
	reservedRestorer = strings.NewReplacer(
		reservedMark+"c", reservedMark,
		reservedMark+"a", tokenStart,
		reservedMark+"b", tokenEnd,
		reservedMark+"d", envStart,
		reservedMark+"e", envEnd,
	)
)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// normalizeBlankLines empties lines that only hold horizontal whitespace.
func normalizeBlankLines(content string) string {
	return whitespaceOnlyLine.ReplaceAllString(content, "")
}

// compressBlankLines limits consecutive blank lines to one.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// escapeReserved rewrites user occurrences of the reserved runes into
// two-rune sequences so they cannot be mistaken for pipeline markers.
func escapeReserved(content string) string {
	return reservedEscaper.Replace(content)
}

// restoreReserved undoes escapeReserved.
func restoreReserved(content string) string {
	return reservedRestorer.Replace(content)
}

// isBlank reports whether line is empty or whitespace only.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
