package main

// Notes:
// - loadEnvConfig reads through an injected getenv, so these tests run in
//   parallel without t.Setenv.

import (
	"strings"
	"testing"

	"github.com/alnah/go-md2tex/internal/config"
	"github.com/alnah/go-md2tex/internal/logging"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		vars        map[string]string
		wantWorkers int
	}{
		{"valid workers", map[string]string{"MD2TEX_WORKERS": "4"}, 4},
		{"zero workers ignored", map[string]string{"MD2TEX_WORKERS": "0"}, 0},
		{"garbage workers ignored", map[string]string{"MD2TEX_WORKERS": "many"}, 0},
		{"unset", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := loadEnvConfig(func(k string) string { return tt.vars[k] })
			if got.Workers != tt.wantWorkers {
				t.Errorf("Workers = %d, want %d", got.Workers, tt.wantWorkers)
			}
		})
	}

	t.Run("strings", func(t *testing.T) {
		t.Parallel()

		vars := map[string]string{
			"MD2TEX_CONFIG":       "work",
			"MD2TEX_TEMPLATE":     "book",
			"MD2TEX_TEMPLATE_DIR": "tpl",
			"MD2TEX_LOG_LEVEL":    "debug",
		}
		got := loadEnvConfig(func(k string) string { return vars[k] })
		if got.ConfigPath != "work" || got.Template != "book" || got.TemplateDir != "tpl" || got.LogLevel != "debug" {
			t.Errorf("loadEnvConfig() = %+v", got)
		}
	})
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills empty directories only", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "from-file"
		applyEnvConfig(&envConfig{InputDir: "in", OutputDir: "out"}, cfg)

		if cfg.Input.DefaultDir != "in" {
			t.Errorf("Input.DefaultDir = %q, want in", cfg.Input.DefaultDir)
		}
		if cfg.Output.DefaultDir != "from-file" {
			t.Errorf("Output.DefaultDir = %q, want from-file", cfg.Output.DefaultDir)
		}
	})

	t.Run("template enables templating", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{Template: "book", TemplateDir: "tpl"}, cfg)
		if !cfg.Template.Enabled || cfg.Template.Name != "book" || cfg.Template.Dir != "tpl" {
			t.Errorf("Template = %+v", cfg.Template)
		}
	})

	t.Run("log level validated", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{LogLevel: "shout"}, cfg)
		if cfg.Log.Level != "info" {
			t.Errorf("invalid env level applied: %q", cfg.Log.Level)
		}
		applyEnvConfig(&envConfig{LogLevel: "error"}, cfg)
		if cfg.Log.Level != "error" {
			t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	logger := logging.NewWithWriter(&buf, "warn")
	warnUnknownEnvVars([]string{
		"MD2TEX_CONFIG=x",
		"MD2TEX_OUTDIR=y",
		"HOME=/root",
	}, logger)

	out := buf.String()
	if !strings.Contains(out, "MD2TEX_OUTDIR") {
		t.Errorf("expected warning for MD2TEX_OUTDIR, got %q", out)
	}
	if strings.Contains(out, "MD2TEX_CONFIG") || strings.Contains(out, "HOME") {
		t.Errorf("unexpected warning: %q", out)
	}
}
