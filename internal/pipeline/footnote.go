package pipeline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2tex/internal/logging"
)

// FootnoteStyle selects the command used for resolved notes.
type FootnoteStyle string

// Footnote styles.
const (
	Footnotes FootnoteStyle = "footnote"
	Endnotes  FootnoteStyle = "endnote"
)

// footnoteMark matches an escaped [^N] with an optional ':' that turns a
// pointer into a definition.
var footnoteMark = regexp.MustCompile(`\[\\textasciicircum\{\}(\d+)\]([ \t]*:)?`)

// footnoteDef is a definition found in the buffer.
type footnoteDef struct {
	key        string
	start, end int // span removed from the buffer
	body       string
}

// edit replaces buf[start:end] with text.
type edit struct {
	start, end int
	text       string
}

// footnoteCounts is what the footnote stage reports back.
type footnoteCounts struct {
	resolved int
	dropped  int
}

// convertFootnotes moves each definition body to every pointer carrying
// its key. The first definition of a key wins; pointers without a usable
// definition and definitions without a pointer disappear.
func convertFootnotes(content string, style FootnoteStyle, logger *log.Logger) (string, footnoteCounts) {
	var counts footnoteCounts

	matches := footnoteMark.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, counts
	}

	var defs []footnoteDef
	var defStarts []int
	for _, m := range matches {
		if m[4] >= 0 {
			defStarts = append(defStarts, m[0])
		}
	}
	for _, m := range matches {
		if m[4] < 0 {
			continue
		}
		next := len(content)
		if k := sort.SearchInts(defStarts, m[0]+1); k < len(defStarts) {
			next = defStarts[k]
		}
		end := definitionEnd(content, m[1], next)
		defs = append(defs, footnoteDef{
			key:   content[m[2]:m[3]],
			start: m[0],
			end:   end,
			body:  strings.Join(strings.Fields(content[m[1]:end]), " "),
		})
	}

	bodies := make(map[string]string, len(defs))
	for _, d := range defs {
		if _, seen := bodies[d.key]; seen {
			logger.Warn("duplicate footnote definition ignored", logging.FieldFootnote, d.key)
			continue
		}
		bodies[d.key] = d.body
	}

	command := `\footnote{`
	if style == Endnotes {
		command = `\endnote{`
	}

	edits := make([]edit, 0, len(matches))
	used := make(map[string]bool, len(bodies))
	for _, d := range defs {
		edits = append(edits, edit{start: d.start, end: d.end})
	}
	for _, m := range matches {
		if m[4] >= 0 || insideDefinition(defs, m[0]) {
			continue
		}
		key := content[m[2]:m[3]]
		body := bodies[key]
		if body == "" {
			edits = append(edits, edit{start: m[0], end: m[1]})
			counts.dropped++
			logger.Debug("footnote pointer without definition removed", logging.FieldFootnote, key)
			continue
		}
		edits = append(edits, edit{start: m[0], end: m[1], text: command + body + "}"})
		used[key] = true
		counts.resolved++
	}
	for key := range bodies {
		if !used[key] {
			counts.dropped++
			logger.Debug("unreferenced footnote definition removed", logging.FieldFootnote, key)
		}
	}

	content = applyEdits(content, edits)

	// Pointers copied along with a definition body are not resolved.
	return footnoteMark.ReplaceAllString(content, ""), counts
}

// definitionEnd returns where a definition body starting at from stops:
// at a blank line, at a protected region, at the next definition or at
// the end of the buffer.
func definitionEnd(content string, from, next int) int {
	pos := from
	for {
		nl := strings.IndexByte(content[pos:], '\n')
		if nl < 0 || pos+nl >= next {
			return next
		}
		lineEnd := pos + nl
		following := content[lineEnd+1:]
		if k := strings.IndexByte(following, '\n'); k >= 0 {
			following = following[:k]
		}
		if isBlank(following) || strings.Contains(following, tokenStart) {
			return lineEnd
		}
		pos = lineEnd + 1
	}
}

func insideDefinition(defs []footnoteDef, pos int) bool {
	for _, d := range defs {
		if pos >= d.start && pos < d.end {
			return true
		}
	}
	return false
}

// applyEdits applies non-overlapping edits to content.
func applyEdits(content string, edits []edit) string {
	sort.Slice(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, e := range edits {
		if e.start < last {
			continue
		}
		b.WriteString(content[last:e.start])
		b.WriteString(e.text)
		last = e.end
	}
	b.WriteString(content[last:])
	return b.String()
}
