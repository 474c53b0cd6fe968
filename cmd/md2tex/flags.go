package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config   string
	quiet    bool
	verbose  bool
	logLevel string
}

// styleFlags select the LaTeX rendering of quotes, notes and headings.
type styleFlags struct {
	frenchQuote bool
	endnote     bool
	unnumbered  bool
	languages   []string
}

// templateFlags control wrapping the body in a complete document.
type templateFlags struct {
	complete bool
	name     string
	dir      string
	date     string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	style    styleFlags
	template templateFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and conversion statistics")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// addStyleFlags adds rendering flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.BoolVarP(&f.frenchQuote, "french-quote", "f", false, "use French quotation marks (csquotes)")
	fs.BoolVarP(&f.endnote, "endnote", "e", false, "emit \\endnote instead of \\footnote")
	fs.BoolVarP(&f.unnumbered, "unnumbered", "u", false, "use starred sectioning commands")
	fs.StringSliceVar(&f.languages, "languages", nil, "languages highlighted with minted (default: all known)")
}

// addTemplateFlags adds template flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.BoolVarP(&f.complete, "complete-tex-file", "C", false, "wrap the body in a complete document")
	fs.StringVarP(&f.name, "template", "t", "", "template name or .tex file (implies -C)")
	fs.StringVar(&f.dir, "template-dir", "", "directory holding templates/<name>.tex")
	fs.StringVarP(&f.date, "date", "d", "", "template date: \"auto\", \"auto:FORMAT\" or literal")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addTemplateFlags(fs, &f.template)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
