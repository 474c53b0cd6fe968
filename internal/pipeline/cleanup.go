package pipeline

import (
	"regexp"
	"strings"
)

var (
	trailingSpaces   = regexp.MustCompile(`(?m)[ \t]+$`)
	interiorSpaces   = regexp.MustCompile(`(\S)[ \t]{2,}`)
	spaceAfterBrace  = regexp.MustCompile(`\{[ \t]+`)
	spaceBeforeBrace = regexp.MustCompile(`[ \t]+\}`)
)

// tidyWhitespace runs on the tokenized buffer, so protected code keeps its
// bytes. Leading indentation is preserved; interior runs of spaces become
// one space and blank line runs become one blank line.
func tidyWhitespace(content string) string {
	content = trailingSpaces.ReplaceAllString(content, "")
	content = interiorSpaces.ReplaceAllString(content, "${1} ")
	content = spaceAfterBrace.ReplaceAllString(content, "{")
	content = spaceBeforeBrace.ReplaceAllString(content, "}")
	content = compressBlankLines(content)

	content = strings.Trim(content, "\n")
	if content == "" {
		return ""
	}
	return content + "\n"
}

// reassemble tidies the buffer, reinjects protected regions and restores
// user occurrences of reserved runes.
func reassemble(content string, regions *Regions) (string, error) {
	content = tidyWhitespace(content)
	content, err := regions.Reinject(content)
	if err != nil {
		return "", err
	}
	if strings.Contains(content, envStart) || strings.Contains(content, envEnd) {
		return "", ErrPlaceholderLost
	}
	return restoreReserved(content), nil
}
