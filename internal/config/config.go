// Package config loads md2tex settings from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2tex/internal/fileutil"
	"github.com/alnah/go-md2tex/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxNameLength     = 100  // template name
	MaxDateLength     = 100  // template date
	MaxLanguageLength = 64   // one language tag
	MaxLanguages      = 1024 // size of the language list
)

// AppDir is the directory under the user config dir searched for configs.
const AppDir = "go-md2tex"

// Config holds all settings for a conversion run.
type Config struct {
	Quotes    string         `yaml:"quotes"`    // "english" (default) or "french"
	Footnotes string         `yaml:"footnotes"` // "footnote" (default) or "endnote"
	Headers   string         `yaml:"headers"`   // "numbered" (default) or "unnumbered"
	Languages []string       `yaml:"languages"` // minted languages (empty = all chroma lexers)
	Input     InputConfig    `yaml:"input"`
	Output    OutputConfig   `yaml:"output"`
	Template  TemplateConfig `yaml:"template"`
	Log       LogConfig      `yaml:"log"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// TemplateConfig controls wrapping the body in a complete document.
type TemplateConfig struct {
	Enabled bool   `yaml:"enabled"` // write a complete .tex file
	Name    string `yaml:"name"`    // template name (default: "default")
	Dir     string `yaml:"dir"`     // custom template base directory
	Date    string `yaml:"date"`    // "auto", "auto:FORMAT" or literal text
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks enum values and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateEnum("quotes", c.Quotes, "english", "french"); err != nil {
		return err
	}
	if err := validateEnum("footnotes", c.Footnotes, "footnote", "endnote"); err != nil {
		return err
	}
	if err := validateEnum("headers", c.Headers, "numbered", "unnumbered"); err != nil {
		return err
	}
	if err := validateEnum("log.level", c.Log.Level, "debug", "info", "warn", "warning", "error"); err != nil {
		return err
	}

	if len(c.Languages) > MaxLanguages {
		return fmt.Errorf("%w: languages (%d entries, max %d)", ErrFieldTooLong, len(c.Languages), MaxLanguages)
	}
	for i, lang := range c.Languages {
		field := fmt.Sprintf("languages[%d]", i)
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidValue, field)
		}
		if err := validateFieldLength(field, lang, MaxLanguageLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.name", c.Template.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.dir", c.Template.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.date", c.Template.Date, MaxDateLength); err != nil {
		return err
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, case-insensitively.
func validateEnum(field, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: %q (must be one of %s)", ErrInvalidValue, field, value, strings.Join(allowed, ", "))
}

// validateFieldLength returns an error if value exceeds maxLength.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a Config with neutral defaults: English quotes,
// footnotes, numbered headings, every language, body-only output.
func DefaultConfig() *Config {
	return &Config{
		Template: TemplateConfig{Name: "default"},
		Log:      LogConfig{Level: "info"},
	}
}

// LoadConfig loads a config by name or path.
// A value containing a path separator is read as is. A bare name is looked
// up as name.yaml or name.yml in the current directory, then in
// {UserConfigDir}/go-md2tex/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists where a bare config name is looked for, in order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
