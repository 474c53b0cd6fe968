package md2tex

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2tex/internal/pipeline"
)

// QuoteStyle selects English or French inline quotes.
type QuoteStyle = pipeline.QuoteStyle

// Quote styles.
const (
	QuoteEnglish = pipeline.QuoteEnglish
	QuoteFrench  = pipeline.QuoteFrench
)

// FootnoteStyle selects \footnote or \endnote.
type FootnoteStyle = pipeline.FootnoteStyle

// Footnote styles.
const (
	Footnotes = pipeline.Footnotes
	Endnotes  = pipeline.Endnotes
)

// HeaderNumbering selects numbered or starred sectioning commands.
type HeaderNumbering = pipeline.HeaderNumbering

// Header numbering modes.
const (
	Numbered   = pipeline.Numbered
	Unnumbered = pipeline.Unnumbered
)

// Stats counts what the conversion did.
type Stats = pipeline.Stats

// Input contains the document to convert.
type Input struct {
	Markdown string // Markdown content (required)
}

// ConvertResult is the outcome of a conversion.
type ConvertResult struct {
	TeX   string // LaTeX body, ending with a newline
	Title string // text of the first level 1 heading, if any
	Stats Stats
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds what the options set.
type converterConfig struct {
	quotes    QuoteStyle
	footnotes FootnoteStyle
	headers   HeaderNumbering
	languages []string
	logger    *log.Logger
}

// WithQuoteStyle sets the inline quote style. Default: QuoteEnglish.
func WithQuoteStyle(style QuoteStyle) Option {
	return func(c *Converter) {
		c.cfg.quotes = style
	}
}

// WithFootnoteStyle sets the note command. Default: Footnotes.
func WithFootnoteStyle(style FootnoteStyle) Option {
	return func(c *Converter) {
		c.cfg.footnotes = style
	}
}

// WithHeaderNumbering sets heading numbering. Default: Numbered.
func WithHeaderNumbering(n HeaderNumbering) Option {
	return func(c *Converter) {
		c.cfg.headers = n
	}
}

// WithLanguages restricts minted highlighting to the given language tags.
// Code blocks in any other language are rendered verbatim. By default
// every language known to chroma is highlighted.
func WithLanguages(names ...string) Option {
	return func(c *Converter) {
		c.cfg.languages = append([]string(nil), names...)
	}
}

// WithLogger sets the logger used for conversion warnings, such as a
// duplicate footnote definition. A logger attached to the context passed
// to Convert takes precedence.
func WithLogger(logger *log.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = logger
	}
}

// Validate checks the option values.
func (cfg *converterConfig) Validate() error {
	switch cfg.quotes {
	case "", QuoteEnglish, QuoteFrench:
	default:
		return fmt.Errorf("%w: %q (must be english or french)", ErrInvalidQuoteStyle, cfg.quotes)
	}
	switch cfg.footnotes {
	case "", Footnotes, Endnotes:
	default:
		return fmt.Errorf("%w: %q (must be footnote or endnote)", ErrInvalidFootnoteStyle, cfg.footnotes)
	}
	switch cfg.headers {
	case "", Numbered, Unnumbered:
	default:
		return fmt.Errorf("%w: %q (must be numbered or unnumbered)", ErrInvalidHeaderNumbering, cfg.headers)
	}
	for _, name := range cfg.languages {
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, "{}\\\n") {
			return fmt.Errorf("%w: %q", ErrInvalidLanguage, name)
		}
	}
	return nil
}

// ParseQuoteStyle maps a name to a QuoteStyle, case-insensitively.
func ParseQuoteStyle(s string) (QuoteStyle, error) {
	q := QuoteStyle(strings.ToLower(strings.TrimSpace(s)))
	switch q {
	case QuoteEnglish, QuoteFrench:
		return q, nil
	}
	return "", fmt.Errorf("%w: %q (must be english or french)", ErrInvalidQuoteStyle, s)
}

// ParseFootnoteStyle maps a name to a FootnoteStyle, case-insensitively.
func ParseFootnoteStyle(s string) (FootnoteStyle, error) {
	f := FootnoteStyle(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Footnotes, Endnotes:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (must be footnote or endnote)", ErrInvalidFootnoteStyle, s)
}

// ParseHeaderNumbering maps a name to a HeaderNumbering, case-insensitively.
func ParseHeaderNumbering(s string) (HeaderNumbering, error) {
	h := HeaderNumbering(strings.ToLower(strings.TrimSpace(s)))
	switch h {
	case Numbered, Unnumbered:
		return h, nil
	}
	return "", fmt.Errorf("%w: %q (must be numbered or unnumbered)", ErrInvalidHeaderNumbering, s)
}
