package pipeline

import (
	"regexp"
	"strings"
)

// HeaderNumbering selects numbered or starred sectioning commands.
type HeaderNumbering string

// Header numbering modes.
const (
	Numbered   HeaderNumbering = "numbered"
	Unnumbered HeaderNumbering = "unnumbered"
)

var (
	// An escaped ATX heading: one or more \# then whitespace then the title.
	headingPattern = regexp.MustCompile(`(?m)^[ \t]*((?:\\#)+)[ \t]+(.*)$`)

	// Optional closing sequence of an ATX heading.
	closingHashes = regexp.MustCompile(`[ \t]+(?:\\#)+[ \t]*$`)
)

// sectioningUnits maps heading levels 1 to 4 to LaTeX units.
var sectioningUnits = []string{"chapter", "section", "subsection", "subsubsection"}

// convertHeaders rewrites headings into sectioning commands. Levels deeper
// than the last unit become a bold paragraph.
func convertHeaders(content string, numbering HeaderNumbering) string {
	return headingPattern.ReplaceAllStringFunc(content, func(line string) string {
		m := headingPattern.FindStringSubmatch(line)
		level := len(m[1]) / len(`\#`)
		title := strings.TrimSpace(closingHashes.ReplaceAllString(m[2], ""))

		if level > len(sectioningUnits) {
			return "\n\\textbf{" + title + "}\n"
		}
		unit := sectioningUnits[level-1]
		if numbering == Unnumbered {
			return "\\" + unit + "*{" + title + "}\n\\addcontentsline{toc}{" + unit + "}{" + title + "}"
		}
		return "\\" + unit + "{" + title + "}"
	})
}
