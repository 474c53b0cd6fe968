// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2tex/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConfigNotFound suggests --config and the user-level config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2tex/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplateNotFound lists the built-in templates.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTemplateNoBody explains the placeholder a template must carry.
func ForTemplateNoBody(token string) string {
	return format("the template must contain " + token + " where the body goes")
}

// ForIndentation explains how nested list items must be indented.
func ForIndentation() string {
	return format("indent nested items by a consistent number of spaces")
}

// ForMissingEngine suggests how to get a LaTeX toolchain.
func ForMissingEngine() string {
	hints := []string{"install TeX Live or MiKTeX"}
	if IsInContainer() {
		hints = append(hints, "or use a texlive/texlive image")
	}
	hints = append(hints, "minted also needs pygmentize (pip install Pygments)")
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
