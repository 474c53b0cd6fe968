package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2tex/internal/logging"
)

// Options tunes the conversion. The zero value means English quotes,
// footnotes, numbered headings and DefaultLanguages.
type Options struct {
	Quotes    QuoteStyle
	Footnotes FootnoteStyle
	Headers   HeaderNumbering
	Languages LanguageSet
}

// Stats counts what the stages did to a document.
type Stats struct {
	Highlighted       int // code blocks rendered with minted
	Verbatim          int // code blocks rendered verbatim
	Lists             int // list environments built
	FootnotesResolved int // pointers turned into note commands
	FootnotesDropped  int // pointers or definitions removed unresolved
	Protected         int // regions withdrawn during the text stages
}

// Result is the converted document body.
type Result struct {
	TeX   string
	Title string
	Stats Stats
}

// state is threaded through the stages.
type state struct {
	buf     string
	opts    Options
	regions *Regions
	stats   Stats
	logger  *log.Logger
}

// stage is one step of the conversion.
type stage struct {
	name string
	run  func(*state) error
}

// stages run in this order.
var stages = []stage{
	{"prepare", func(s *state) error {
		s.buf = escapeReserved(normalizeLineEndings(s.buf))
		return nil
	}},
	{"code blocks", func(s *state) error {
		s.buf = convertCodeBlocks(s.buf, s.opts.Languages, &s.stats)
		return nil
	}},
	{"escape", func(s *state) error {
		var err error
		s.buf, err = protectAndEscape(s.buf, s.regions)
		s.stats.Protected = s.regions.Len()
		return err
	}},
	{"quotes", func(s *state) error {
		s.buf = convertQuotes(s.buf, s.opts.Quotes)
		return nil
	}},
	{"lists", func(s *state) error {
		var err error
		s.buf, s.stats.Lists, err = convertLists(s.buf)
		return err
	}},
	{"footnotes", func(s *state) error {
		var counts footnoteCounts
		s.buf, counts = convertFootnotes(s.buf, s.opts.Footnotes, s.logger)
		s.stats.FootnotesResolved = counts.resolved
		s.stats.FootnotesDropped = counts.dropped
		return nil
	}},
	{"headers", func(s *state) error {
		s.buf = convertHeaders(s.buf, s.opts.Headers)
		return nil
	}},
	{"substitutions", func(s *state) error {
		s.buf = substitute(s.buf, s.regions)
		return nil
	}},
	{"cleanup", func(s *state) error {
		var err error
		s.buf, err = reassemble(s.buf, s.regions)
		return err
	}},
}

// Run converts a Markdown document into a LaTeX body.
// The context carries the logger and is checked between stages.
func Run(ctx context.Context, markdown string, opts Options) (*Result, error) {
	if opts.Languages == nil {
		opts.Languages = DefaultLanguages()
	}
	s := &state{
		buf:     markdown,
		opts:    opts,
		regions: NewRegions(),
		logger:  logging.FromContext(ctx),
	}

	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		if err := st.run(s); err != nil {
			return nil, err
		}
		s.logger.Debug("stage done", logging.FieldStage, st.name, logging.FieldElapsed, time.Since(start))
	}

	return &Result{
		TeX:   s.buf,
		Title: ExtractTitle(markdown),
		Stats: s.stats,
	}, nil
}
