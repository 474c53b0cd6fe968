// Package dateutil resolves the date written into document templates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength bounds user-supplied format strings.
const MaxFormatLength = 50

// DefaultFormat is used by a bare "auto".
const DefaultFormat = "YYYY-MM-DD"

// Presets name common formats for "auto:<preset>".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// tokens map format tokens to time layout elements, longest first.
var tokens = []struct{ token, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Layout converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D) into a
// time layout. Text inside [brackets] is copied verbatim; other characters
// are kept as they are.
func Layout(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	for rest := format; rest != ""; {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(literal)
			rest = after
			continue
		}
		n := 1
		text := rest[:1]
		for _, t := range tokens {
			if strings.HasPrefix(rest, t.token) {
				n, text = len(t.token), t.layout
				break
			}
		}
		b.WriteString(text)
		rest = rest[n:]
	}
	return b.String(), nil
}

// Resolve expands "auto" and "auto:FORMAT" (or "auto:<preset>") against now.
// Any other value is returned unchanged.
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultFormat
	if lower != "auto" {
		rest, ok := strings.CutPrefix(value, value[:len("auto")]+":")
		if !ok {
			return "", fmt.Errorf("%w: %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		format = rest
		if preset, ok := Presets[strings.ToLower(rest)]; ok {
			format = preset
		}
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
