package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2tex/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args, DefaultEnv()))
}

// run dispatches to a command and returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "convert":
		return runConvertCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2tex %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	// Shorthand: md2tex doc.md [flags] or md2tex -f doc.md
	if fileutil.IsMarkdown(cmd) || strings.HasPrefix(cmd, "-") {
		return runConvertCmd(args[1:], env)
	}

	fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}
