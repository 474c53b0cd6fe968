package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// markedEnvironment matches an environment emitted by the code block stage.
var markedEnvironment = regexp.MustCompile("(?s)" + envStart + ".*?" + envEnd)

// latexEscaper rewrites the ten LaTeX special characters in one pass, so
// the braces of an inserted command are never escaped a second time.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`#`, `\#`,
	`$`, `\$`,
	`%`, `\%`,
	`&`, `\&`,
	`~`, `\textasciitilde{}`,
	`_`, `\_`,
	`^`, `\textasciicircum{}`,
)

// EscapeText escapes LaTeX special characters in plain text.
func EscapeText(s string) string {
	return latexEscaper.Replace(s)
}

// protectAndEscape withdraws generated environments into regions, empties
// whitespace-only lines and escapes everything that is left.
func protectAndEscape(content string, regions *Regions) (string, error) {
	if strings.Contains(content, tokenStart) || strings.Contains(content, tokenEnd) {
		return "", ErrTokenCollision
	}

	content = markedEnvironment.ReplaceAllStringFunc(content, func(match string) string {
		return regions.Protect(match[len(envStart) : len(match)-len(envEnd)])
	})
	if strings.Contains(content, envStart) || strings.Contains(content, envEnd) {
		return "", fmt.Errorf("%w: unbalanced environment marker", ErrTokenCollision)
	}

	content = normalizeBlankLines(content)
	return EscapeText(content), nil
}
