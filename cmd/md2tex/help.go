package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2tex <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to LaTeX")
	fmt.Fprintln(w, "  doctor     Check the LaTeX toolchain")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "'md2tex <file.md> [flags]' is short for 'md2tex convert <file.md> [flags]'.")
	fmt.Fprintln(w, "Run 'md2tex help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2tex convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to LaTeX.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output .tex file or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -f, --french-quote          French quotation marks (\\enquote)")
	fmt.Fprintln(w, "  -e, --endnote               \\endnote instead of \\footnote")
	fmt.Fprintln(w, "  -u, --unnumbered            Unnumbered sections, still listed in the TOC")
	fmt.Fprintln(w, "      --languages <a,b>       Languages highlighted with minted (default: all known)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Template:")
	fmt.Fprintln(w, "  -C, --complete-tex-file     Write a complete document, not only the body")
	fmt.Fprintln(w, "  -t, --template <name|file>  Template name or .tex file (implies -C)")
	fmt.Fprintln(w, "      --template-dir <dir>    Directory holding templates/<name>.tex")
	fmt.Fprintln(w, "  -d, --date <s>              Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                              Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                              Presets: iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show timing and conversion statistics")
	fmt.Fprintln(w, "      --log-level <level>     debug, info, warn, error")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2TEX_CONFIG, MD2TEX_INPUT_DIR, MD2TEX_OUTPUT_DIR, MD2TEX_TEMPLATE,")
	fmt.Fprintln(w, "  MD2TEX_TEMPLATE_DIR, MD2TEX_LOG_LEVEL, MD2TEX_WORKERS")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2tex doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Look for LaTeX engines and pygmentize (used by minted).")
	fmt.Fprintln(w, "Exits 1 when no engine is found.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2tex version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2tex help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
