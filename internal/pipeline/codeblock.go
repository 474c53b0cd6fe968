package pipeline

import (
	"regexp"
	"strings"
)

// fencedRegion matches a triple-backtick fence, lazily, across lines.
var fencedRegion = regexp.MustCompile("(?s)```(.*?)```")

// codeBlock is a fenced region split into its language tag and body.
type codeBlock struct {
	lang string
	body string
}

// parseCodeBlock splits the text between the fences. The first line is the
// language tag; without a newline there is no tag and everything is body.
// One trailing newline is dropped from the body.
func parseCodeBlock(inner string) codeBlock {
	nl := strings.IndexByte(inner, '\n')
	if nl < 0 {
		return codeBlock{body: inner}
	}
	return codeBlock{
		lang: strings.TrimSpace(inner[:nl]),
		body: strings.TrimSuffix(inner[nl+1:], "\n"),
	}
}

// renderCodeBlock emits a minted listing for a supported language and a
// verbatim environment for everything else. The second return reports
// whether minted was used.
func renderCodeBlock(block codeBlock, langs LanguageSet) (string, bool) {
	var b strings.Builder
	body := block.body
	if body != "" {
		body += "\n"
	}
	if lang, ok := langs.Resolve(block.lang); ok {
		b.WriteString("\\begin{listing}\n")
		b.WriteString("\\begin{minted}{" + lang + "}\n")
		b.WriteString(body)
		b.WriteString("\\end{minted}\n")
		b.WriteString("\\end{listing}")
		return b.String(), true
	}
	b.WriteString("\\begin{verbatim}\n")
	b.WriteString(body)
	b.WriteString("\\end{verbatim}")
	return b.String(), false
}

// convertCodeBlocks replaces every fenced region with its environment,
// wrapped in environment markers on a line of its own.
func convertCodeBlocks(content string, langs LanguageSet, stats *Stats) string {
	return fencedRegion.ReplaceAllStringFunc(content, func(match string) string {
		block := parseCodeBlock(match[3 : len(match)-3])
		env, highlighted := renderCodeBlock(block, langs)
		if highlighted {
			stats.Highlighted++
		} else {
			stats.Verbatim++
		}
		return "\n" + envStart + env + envEnd + "\n"
	})
}
