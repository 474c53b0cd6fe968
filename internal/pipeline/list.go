package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

// listKind describes one flavor of Markdown list.
type listKind struct {
	env    string
	item   func(line string) bool
	marker *regexp.Regexp
	// interrupt reports an item of the other kind, which ends a run when
	// it is indented less than the run's first item.
	interrupt func(line string) bool
}

var (
	orderedItemLine = regexp.MustCompile(`^[ \t]*\d+\.`)
	dashItemLine    = regexp.MustCompile(`^[ \t]*-`)
	dashRunLine     = regexp.MustCompile(`^[ \t]*---`)
	ruleLine        = regexp.MustCompile(`^[ \t]*(?:-{3,}|\*{3,})[ \t]*$`)
	headingLine     = regexp.MustCompile(`^[ \t]*(?:\\#)+[ \t]`)
)

var (
	unorderedList = listKind{
		env: "itemize",
		item: func(line string) bool {
			return dashItemLine.MatchString(line) && !dashRunLine.MatchString(line)
		},
		marker:    regexp.MustCompile(`^\s*-\s*`),
		interrupt: orderedItemLine.MatchString,
	}
	orderedList = listKind{
		env:    "enumerate",
		item:   orderedItemLine.MatchString,
		marker: regexp.MustCompile(`^\s*\d+\.\s*`),
		interrupt: func(line string) bool {
			return dashItemLine.MatchString(line) && !dashRunLine.MatchString(line)
		},
	}
)

// listItem is a folded list item: its raw indentation and its text.
type listItem struct {
	indent  int
	content string
}

// convertLists rewrites unordered lists, then ordered lists, and returns
// how many environments were built.
func convertLists(content string) (string, int, error) {
	total := 0
	for _, kind := range []listKind{unorderedList, orderedList} {
		var (
			n   int
			err error
		)
		content, n, err = kind.convert(content)
		if err != nil {
			return "", total, err
		}
		total += n
	}
	return content, total, nil
}

// convert finds each run of list lines and replaces it with an environment.
// A run starts at an item line and takes every following line up to a
// blank line, a horizontal rule, a heading or an outdented item of the
// other kind.
func (k listKind) convert(content string) (string, int, error) {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	built := 0

	for i := 0; i < len(lines); {
		if !k.item(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}
		base := leadingWhitespace(lines[i])
		j := i + 1
		for j < len(lines) && !endsListRun(lines[j]) &&
			!(k.interrupt(lines[j]) && leadingWhitespace(lines[j]) < base) {
			j++
		}
		env, err := k.build(lines[i:j])
		if err != nil {
			return "", built, err
		}
		out = append(out, env)
		built++
		i = j
	}
	return strings.Join(out, "\n"), built, nil
}

func endsListRun(line string) bool {
	return isBlank(line) || ruleLine.MatchString(line) || headingLine.MatchString(line)
}

// build folds continuation lines into their item, maps indentation to
// nesting levels and emits the nested environments.
func (k listKind) build(lines []string) (string, error) {
	items := k.fold(lines)

	indents := make([]int, len(items))
	for i, it := range items {
		indents[i] = it.indent
	}
	levels, reason := nestingLevels(indents)
	if reason != 0 {
		return "", &IndentationError{List: strings.Join(lines, "\n"), Reason: reason}
	}

	begin := "\\begin{" + k.env + "}\n"
	end := "\\end{" + k.env + "}\n"

	var b strings.Builder
	b.WriteString(begin)
	prev := 0
	for i, it := range items {
		switch level := levels[i]; {
		case level > prev:
			b.WriteString(strings.Repeat(begin, level-prev))
		case level < prev:
			b.WriteString(strings.Repeat(end, prev-level))
		}
		b.WriteString("\\item")
		if it.content != "" {
			b.WriteString(" " + it.content)
		}
		b.WriteString("\n")
		prev = levels[i]
	}
	b.WriteString(strings.Repeat(end, prev))
	b.WriteString("\\end{" + k.env + "}")
	return b.String(), nil
}

// fold joins every non-item line onto the preceding item with a space.
func (k listKind) fold(lines []string) []listItem {
	var items []listItem
	for _, line := range lines {
		if k.item(line) || len(items) == 0 {
			items = append(items, listItem{
				indent:  leadingWhitespace(line),
				content: strings.TrimRightFunc(k.marker.ReplaceAllString(line, ""), unicode.IsSpace),
			})
			continue
		}
		last := &items[len(items)-1]
		last.content += " " + strings.TrimSpace(line)
	}
	return items
}

// nestingLevels maps raw indentations to levels. Indentation is taken
// relative to the first item; the smallest positive relative indentation
// is the step every other indentation must be a multiple of. A level may
// only grow by one from the previous item.
func nestingLevels(indents []int) ([]int, IndentReason) {
	levels := make([]int, len(indents))
	if len(indents) == 0 {
		return levels, 0
	}

	base := indents[0]
	step := 0
	for _, in := range indents {
		rel := in - base
		if rel < 0 {
			return nil, BelowBaseline
		}
		if rel > 0 && (step == 0 || rel < step) {
			step = rel
		}
	}

	prev := 0
	for i, in := range indents {
		rel := in - base
		level := 0
		if step > 0 {
			if rel%step != 0 {
				return nil, NotMultiple
			}
			level = rel / step
		}
		if level > prev+1 {
			level = prev + 1
		}
		levels[i] = level
		prev = level
	}
	return levels, 0
}

// leadingWhitespace counts whitespace runes before the first other rune.
// Tabs count as one column.
func leadingWhitespace(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}
