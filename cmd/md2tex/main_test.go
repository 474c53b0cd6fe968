package main

// Notes:
// - run: command dispatch and exit codes. Conversions themselves are
//   covered in convert_test.go.

import (
	"strings"
	"testing"
)

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no command", []string{"md2tex"}, ExitUsage, "", "Usage: md2tex"},
		{"version", []string{"md2tex", "version"}, ExitSuccess, "md2tex dev", ""},
		{"version flag", []string{"md2tex", "--version"}, ExitSuccess, "md2tex dev", ""},
		{"help", []string{"md2tex", "help"}, ExitSuccess, "Commands:", ""},
		{"help convert", []string{"md2tex", "help", "convert"}, ExitSuccess, "--complete-tex-file", ""},
		{"help doctor", []string{"md2tex", "help", "doctor"}, ExitSuccess, "--json", ""},
		{"help unknown", []string{"md2tex", "help", "render"}, ExitUsage, "", "Unknown command: render"},
		{"unknown command", []string{"md2tex", "render"}, ExitUsage, "", "Unknown command: render"},
		{"convert help", []string{"md2tex", "convert", "--help"}, ExitSuccess, "", "Usage: md2tex convert"},
		{"bad flag", []string{"md2tex", "convert", "--nope"}, ExitUsage, "", "unknown flag"},
		{"doctor", []string{"md2tex", "doctor"}, ExitGeneral, "md2tex doctor", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv(nil)
			if code := run(tt.args, env); code != tt.wantCode {
				t.Errorf("exit = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout %q should contain %q", stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr %q should contain %q", stderr, tt.wantStderr)
			}
		})
	}
}
