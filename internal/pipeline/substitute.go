package pipeline

import (
	"regexp"
	"strings"
)

// rule is one inline substitution. Rules run in table order.
type rule struct {
	name  string
	apply func(string) string
}

var (
	imagePattern   = regexp.MustCompile(`!\[([^\]\n]*)\]\(([^)\n]*)\)`)
	linkPattern    = regexp.MustCompile(`\[([^\]\n]*)\]\(([^)\n]*)\)`)
	rulePattern    = regexp.MustCompile(`(?m)^[ \t]*(?:-{3,}|\*{3,})[ \t]*$`)
	lineBreakTag   = regexp.MustCompile(`<br[ \t]*/?>`)
	figureTemplate = "\\begin{figure}\n\\centering\n\\includegraphics[width=\\linewidth]{${2}}\n\\caption{${1}}\n\\end{figure}"
)

// substitutions is ordered: bold before italics so ** is never read as two
// italic markers, and images before links since an image contains a link.
// Inline code is handled before the table by substitute.
var substitutions = []rule{
	{"bold", delimited('*', 2, enclosing(`\textbf{`, `}`))},
	{"italics", delimited('*', 1, enclosing(`\textit{`, `}`))},
	{"image", replacing(imagePattern, figureTemplate)},
	{"link", replacing(linkPattern, `\href{${2}}{${1}}`)},
	{"horizontal rule", replacing(rulePattern, `\par\noindent\rule{\linewidth}{0.4pt}`)},
	{"line break", replacing(lineBreakTag, "\n\n")},
}

// substitute withdraws inline code spans into regions, so their asterisks
// are never read as emphasis, then applies every rule in order.
func substitute(content string, regions *Regions) string {
	content = delimited('`', 1, func(inner string) string {
		return regions.Protect(`\texttt{` + inner + `}`)
	})(content)
	for _, r := range substitutions {
		content = r.apply(content)
	}
	return content
}

func replacing(re *regexp.Regexp, repl string) func(string) string {
	return func(s string) string {
		return re.ReplaceAllString(s, repl)
	}
}

func enclosing(open, close string) func(string) string {
	return func(inner string) string {
		return open + inner + close
	}
}

// delimited returns a rule pairing runs of exactly width delim bytes within
// a line, left to right, and replacing each pair by wrap of the text
// between. Longer or shorter runs are left alone, and an unpaired last run
// stays literal.
func delimited(delim byte, width int, wrap func(string) string) func(string) string {
	return func(s string) string {
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			lines[i] = pairDelimiters(line, delim, width, wrap)
		}
		return strings.Join(lines, "\n")
	}
}

func pairDelimiters(line string, delim byte, width int, wrap func(string) string) string {
	var runs []int
	for i := 0; i < len(line); {
		if line[i] != delim {
			i++
			continue
		}
		j := i
		for j < len(line) && line[j] == delim {
			j++
		}
		if j-i == width && !starredCommand(line, i, j) {
			runs = append(runs, i)
		}
		i = j
	}
	if len(runs) < 2 {
		return line
	}

	var b strings.Builder
	last := 0
	for k := 0; k+1 < len(runs); k += 2 {
		b.WriteString(line[last:runs[k]])
		b.WriteString(wrap(line[runs[k]+width : runs[k+1]]))
		last = runs[k+1] + width
	}
	b.WriteString(line[last:])
	return b.String()
}

// starredCommand reports whether line[i:j] is the star of a command such
// as \section*{ or \enquote*{ emitted by an earlier stage.
func starredCommand(line string, i, j int) bool {
	if j >= len(line) || line[j] != '{' {
		return false
	}
	k := i
	for k > 0 && isASCIILetter(line[k-1]) {
		k--
	}
	return k < i && k > 0 && line[k-1] == '\\'
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
