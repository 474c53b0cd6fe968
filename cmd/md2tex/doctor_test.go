package main

// Notes:
// - The doctor struct takes fake lookups; only checkSystem touches the real
//   temp directory.
// - isContainer's /.dockerenv signal depends on the host and is not asserted.

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// fakeDoctor finds exactly the named programs under /opt/tex/bin.
func fakeDoctor(found ...string) *doctor {
	have := make(map[string]bool)
	for _, f := range found {
		have[f] = true
	}
	return &doctor{
		lookPath: func(name string) (string, error) {
			if have[name] {
				return "/opt/tex/bin/" + name, nil
			}
			return "", errNotOnPath
		},
		version: func(path string) string { return "v-" + path[strings.LastIndex(path, "/")+1:] },
		getenv:  func(string) string { return "" },
	}
}

func TestDoctor_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		found      []string
		wantStatus string
	}{
		{"everything present", []string{"pdflatex", "xelatex", "lualatex", "pygmentize"}, "ready"},
		{"one engine is enough", []string{"lualatex", "pygmentize"}, "ready"},
		{"no highlighter", []string{"pdflatex"}, "warnings"},
		{"no engine", []string{"pygmentize"}, "errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := fakeDoctor(tt.found...).run()
			if result.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q (errors %v, warnings %v)",
					result.Status, tt.wantStatus, result.Errors, result.Warnings)
			}
			if len(result.Engines) != len(latexEngines) {
				t.Errorf("Engines = %d entries, want %d", len(result.Engines), len(latexEngines))
			}
		})
	}
}

func TestDoctor_Lookup(t *testing.T) {
	t.Parallel()

	d := fakeDoctor("xelatex")
	got := d.lookup("xelatex")
	if !got.Found || got.Path != "/opt/tex/bin/xelatex" || got.Version != "v-xelatex" {
		t.Errorf("lookup() = %+v", got)
	}
	if missing := d.lookup("pdflatex"); missing.Found || missing.Path != "" {
		t.Errorf("lookup(missing) = %+v", missing)
	}
}

func TestDoctor_IsContainer(t *testing.T) {
	t.Parallel()

	vars := map[string]string{"MD2TEX_CONTAINER": "1"}
	d := &doctor{getenv: func(k string) string { return vars[k] }}
	if ok, hint := d.isContainer(); !ok || hint != "MD2TEX_CONTAINER=1" {
		t.Errorf("isContainer() = %v, %q", ok, hint)
	}
}

func TestRunDoctorCmd(t *testing.T) {
	t.Parallel()

	t.Run("text output without engines", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv(nil)
		if code := runDoctorCmd(nil, env); code != ExitGeneral {
			t.Errorf("exit = %d, want %d", code, ExitGeneral)
		}
		for _, want := range []string{"md2tex doctor", "pdflatex: not found", "Not ready", "TeX Live"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("output missing %q:\n%s", want, stdout)
			}
		}
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := newTestEnv(nil)
		env.LookPath = func(name string) (string, error) {
			if name == "pdflatex" {
				return "/nonexistent/pdflatex", nil
			}
			return "", errNotOnPath
		}
		code := runDoctorCmd([]string{"--json"}, env)

		var result doctorResult
		if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, stdout)
		}
		if code != ExitSuccess || result.Status != "warnings" {
			t.Errorf("exit = %d, status = %q", code, result.Status)
		}
		if !result.Engines[0].Found || result.Engines[0].Version != "" {
			t.Errorf("engine = %+v", result.Engines[0])
		}
	})
}

func TestPrintDoctorResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printDoctorResult(&buf, &doctorResult{
		Status:      "ready",
		Engines:     []toolInfo{{Name: "pdflatex", Found: true, Path: "/bin/pdflatex", Version: "pdfTeX 3.14"}},
		Highlighter: toolInfo{Name: "pygmentize", Found: true, Path: "/bin/pygmentize"},
		Env:         envInfo{OS: "linux", Arch: "amd64", CI: true},
		System:      systemInfo{TempWritable: true},
	})

	for _, want := range []string{
		"[OK] pdflatex: /bin/pdflatex (pdfTeX 3.14)",
		"[OK] pygmentize: /bin/pygmentize",
		"CI: detected",
		"Status: Ready to compile",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}
