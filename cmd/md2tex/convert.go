package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/config"
	"github.com/alnah/go-md2tex/internal/dateutil"
	"github.com/alnah/go-md2tex/internal/fileutil"
	"github.com/alnah/go-md2tex/internal/hints"
	"github.com/alnah/go-md2tex/internal/logging"
)

// ErrReadTemplate is returned when a template file given by path cannot be read.
var ErrReadTemplate = errors.New("failed to read template file")

// runConvertCmd parses flags, runs the conversion and returns the exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		var batchErr *BatchError
		if errors.As(err, &batchErr) {
			// Per-file failures were already printed with their hints.
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
		} else {
			fmt.Fprintf(env.Stderr, "error: %s\n", describeError(err, flags))
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	envCfg := loadEnvConfig(env.Getenv)
	if flags.workers == 0 {
		flags.workers = envCfg.Workers
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewWithWriter(env.Stderr, cfg.Log.Level)
	ctx = logging.WithLogger(ctx, logger)
	warnUnknownEnvVars(env.Environ(), logger)

	converter, err := newConverter(cfg, logger)
	if err != nil {
		return err
	}

	shell, err := resolveTemplate(cfg)
	if err != nil {
		return err
	}
	date, err := dateutil.Resolve(cfg.Template.Date, env.Now())
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, resolveOutputDir(flags.output, cfg), logger)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	logger.Debug("starting conversion",
		logging.FieldFiles, len(files),
		logging.FieldJobs, resolveWorkers(flags.workers, len(files)),
		"gomaxprocs", runtime.GOMAXPROCS(0),
	)

	results := convertBatch(ctx, files, &conversionParams{
		converter: converter,
		template:  shell,
		date:      date,
		workers:   flags.workers,
	})

	summary := printResults(results, flags, env)
	logger.Debug("conversion finished",
		logging.FieldSucceeded, summary.Succeeded,
		logging.FieldFailed, summary.Failed,
	)
	if summary.Failed > 0 {
		return &BatchError{Failed: summary.Failed, Total: len(results), First: summary.First}
	}
	return nil
}

// loadConfig loads the config named by the flag, falling back to
// MD2TEX_CONFIG, then to defaults.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.style.frenchQuote {
		cfg.Quotes = string(md2tex.QuoteFrench)
	}
	if flags.style.endnote {
		cfg.Footnotes = string(md2tex.Endnotes)
	}
	if flags.style.unnumbered {
		cfg.Headers = string(md2tex.Unnumbered)
	}
	if len(flags.style.languages) > 0 {
		cfg.Languages = flags.style.languages
	}

	if flags.template.complete {
		cfg.Template.Enabled = true
	}
	if flags.template.name != "" {
		cfg.Template.Name = flags.template.name
		cfg.Template.Enabled = true
	}
	if flags.template.dir != "" {
		cfg.Template.Dir = flags.template.dir
	}
	if flags.template.date != "" {
		cfg.Template.Date = flags.template.date
	}

	// --log-level beats --verbose, which beats --quiet.
	switch {
	case flags.common.logLevel != "":
		cfg.Log.Level = flags.common.logLevel
	case flags.common.verbose:
		cfg.Log.Level = "debug"
	case flags.common.quiet:
		cfg.Log.Level = "error"
	}
}

// newConverter builds the library converter from validated config.
func newConverter(cfg *config.Config, logger *log.Logger) (*md2tex.Converter, error) {
	opts := []md2tex.Option{md2tex.WithLogger(logger)}

	if cfg.Quotes != "" {
		q, err := md2tex.ParseQuoteStyle(cfg.Quotes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, md2tex.WithQuoteStyle(q))
	}
	if cfg.Footnotes != "" {
		f, err := md2tex.ParseFootnoteStyle(cfg.Footnotes)
		if err != nil {
			return nil, err
		}
		opts = append(opts, md2tex.WithFootnoteStyle(f))
	}
	if cfg.Headers != "" {
		h, err := md2tex.ParseHeaderNumbering(cfg.Headers)
		if err != nil {
			return nil, err
		}
		opts = append(opts, md2tex.WithHeaderNumbering(h))
	}
	if len(cfg.Languages) > 0 {
		opts = append(opts, md2tex.WithLanguages(cfg.Languages...))
	}

	return md2tex.NewConverter(opts...)
}

// resolveTemplate returns the document shell, or "" when templating is off.
// A template value containing a path separator is read as a file;
// otherwise it names a template in template.dir or the built-in set.
func resolveTemplate(cfg *config.Config) (string, error) {
	if !cfg.Template.Enabled {
		return "", nil
	}

	name := cfg.Template.Name
	if name == "" {
		name = md2tex.DefaultTemplate
	}

	var shell string
	if fileutil.IsFilePath(name) {
		data, err := os.ReadFile(name) // #nosec G304 -- user-provided template path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
		}
		shell = string(data)
	} else {
		loader, err := md2tex.NewTemplateLoader(cfg.Template.Dir)
		if err != nil {
			return "", err
		}
		if shell, err = loader.LoadTemplate(name); err != nil {
			return "", err
		}
	}

	// Fail before converting anything when the shell is unusable.
	if _, err := md2tex.ApplyTemplate(shell, nil); err != nil {
		return "", fmt.Errorf("template %q: %w", name, err)
	}
	return shell, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// describeError renders err with an actionable hint when one applies.
func describeError(err error, flags *convertFlags) string {
	msg := err.Error()
	switch {
	case errors.Is(err, md2tex.ErrIndentation):
		return msg + hints.ForIndentation()
	case errors.Is(err, md2tex.ErrTemplateNoBody):
		return msg + hints.ForTemplateNoBody(md2tex.BodyToken)
	case errors.Is(err, md2tex.ErrTemplateNotFound):
		return msg + hints.ForTemplateNotFound(md2tex.BuiltinTemplates())
	case errors.Is(err, config.ErrConfigNotFound):
		if flags != nil && flags.common.config != "" && !fileutil.IsFilePath(flags.common.config) {
			return msg + hints.ForConfigNotFound(config.SearchPaths(flags.common.config))
		}
		return msg + hints.ForConfigNotFound(nil)
	case errors.Is(err, ErrWriteTeX):
		return msg + hints.ForOutputDirectory()
	}
	return msg
}
