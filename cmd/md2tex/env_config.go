package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2tex/internal/config"
	"github.com/alnah/go-md2tex/internal/logging"
)

// envPrefix starts every environment variable md2tex reads.
const envPrefix = "MD2TEX_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // MD2TEX_CONFIG: config file name or path
	InputDir    string // MD2TEX_INPUT_DIR: default input directory
	OutputDir   string // MD2TEX_OUTPUT_DIR: default output directory
	Template    string // MD2TEX_TEMPLATE: template name
	TemplateDir string // MD2TEX_TEMPLATE_DIR: custom template directory
	LogLevel    string // MD2TEX_LOG_LEVEL: debug, info, warn, error
	Workers     int    // MD2TEX_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2TEX_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2TEX_CONFIG":       true,
	"MD2TEX_INPUT_DIR":    true,
	"MD2TEX_OUTPUT_DIR":   true,
	"MD2TEX_TEMPLATE":     true,
	"MD2TEX_TEMPLATE_DIR": true,
	"MD2TEX_LOG_LEVEL":    true,
	"MD2TEX_WORKERS":      true,
}

// loadEnvConfig reads the MD2TEX_* variables through getenv.
// An unparsable or non-positive MD2TEX_WORKERS is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:  getenv("MD2TEX_CONFIG"),
		InputDir:    getenv("MD2TEX_INPUT_DIR"),
		OutputDir:   getenv("MD2TEX_OUTPUT_DIR"),
		Template:    getenv("MD2TEX_TEMPLATE"),
		TemplateDir: getenv("MD2TEX_TEMPLATE_DIR"),
		LogLevel:    getenv("MD2TEX_LOG_LEVEL"),
	}
	if workers := getenv("MD2TEX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized MD2TEX_* variable.
func warnUnknownEnvVars(environ []string, logger *log.Logger) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment values to cfg. Directories only fill
// what the file left empty; template and log level replace the file value.
// CLI flags are applied afterwards by mergeFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Template != "" {
		cfg.Template.Name = env.Template
		cfg.Template.Enabled = true
	}
	if env.TemplateDir != "" && cfg.Template.Dir == "" {
		cfg.Template.Dir = env.TemplateDir
	}
	if env.LogLevel != "" {
		if _, ok := logging.ParseLevel(env.LogLevel); ok {
			cfg.Log.Level = env.LogLevel
		}
	}
}
