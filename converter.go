package md2tex

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2tex/internal/logging"
	"github.com/alnah/go-md2tex/internal/pipeline"
)

// Converter turns Markdown into a LaTeX body.
// A Converter holds no per-document state and is safe for concurrent use.
type Converter struct {
	cfg  converterConfig
	opts pipeline.Options
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithQuoteStyle, WithLanguages).
// Returns an error wrapping one of the ErrInvalid* sentinels if an option
// value is not recognized.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	c.opts = pipeline.Options{
		Quotes:    c.cfg.quotes,
		Footnotes: c.cfg.footnotes,
		Headers:   c.cfg.headers,
	}
	if c.cfg.languages != nil {
		c.opts.Languages = pipeline.NewLanguageSet(c.cfg.languages...)

		logger := c.cfg.logger
		if logger == nil {
			logger = logging.Default()
		}
		for _, name := range c.cfg.languages {
			if !pipeline.Lexer(name) {
				logger.Warn("no known lexer for highlight language", logging.FieldLanguage, name)
			}
		}
	}
	return c, nil
}

// Convert runs the pipeline on input.Markdown.
// The context is used for cancellation and may carry a logger.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	if c.cfg.logger != nil && logging.FromContext(ctx) == logging.Default() {
		ctx = logging.WithLogger(ctx, c.cfg.logger)
	}

	res, err := pipeline.Run(ctx, input.Markdown, c.opts)
	if err != nil {
		return nil, err
	}
	return &ConvertResult{
		TeX:   res.TeX,
		Title: res.Title,
		Stats: res.Stats,
	}, nil
}
