package pipeline

import (
	"regexp"
	"strings"
)

// QuoteStyle selects how inline quotes are rendered.
type QuoteStyle string

// Quote styles.
const (
	QuoteEnglish QuoteStyle = "english"
	QuoteFrench  QuoteStyle = "french"
)

var (
	// Greedy within a line: the first and last double quote pair up.
	doubleQuoted = regexp.MustCompile(`"(.*)"`)

	// Single quotes only count when not glued to a letter or digit,
	// which keeps apostrophes (don't, l'eau) out.
	singleQuoted = regexp.MustCompile(`(?m)(^|[^\p{L}\p{N}])'(.*)'([^\p{L}\p{N}]|$)`)

	// A run of consecutive lines starting with '>' and holding text.
	blockQuoteRun = regexp.MustCompile(`(?m)(?:^>.+(?:\n|$))+`)
)

// convertQuotes rewrites inline quotes for style, then block quotes.
// Single quotes go first: the English double quote output ends with two
// apostrophes that the single quote pattern would otherwise pick up.
func convertQuotes(content string, style QuoteStyle) string {
	var double, single string
	switch style {
	case QuoteFrench:
		double = `\enquote{${1}}`
		single = `${1}\enquote*{${2}}${3}`
	default:
		double = "``${1}''"
		single = `${1}\textquoteleft{}${2}\textquoteright{}${3}`
	}
	content = singleQuoted.ReplaceAllString(content, single)
	content = doubleQuoted.ReplaceAllString(content, double)
	return convertBlockQuotes(content)
}

// convertBlockQuotes wraps each run of '>' lines in a quotation
// environment, replacing only the leading '>' of each line by a space.
func convertBlockQuotes(content string) string {
	return blockQuoteRun.ReplaceAllStringFunc(content, func(run string) string {
		trailing := strings.HasSuffix(run, "\n")
		lines := strings.Split(strings.TrimSuffix(run, "\n"), "\n")
		for i, line := range lines {
			lines[i] = " " + line[1:]
		}
		out := "\\begin{quotation}\n" + strings.Join(lines, "\n") + "\n\\end{quotation}"
		if trailing {
			out += "\n"
		}
		return out
	})
}
