package pipeline

import (
	"regexp"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"
)

// LanguageSet is the set of code block language tags rendered with minted.
// Keys are lower case. A nil set means DefaultLanguages.
type LanguageSet map[string]struct{}

// mintedArgument matches tags safe inside \begin{minted}{...}.
var mintedArgument = regexp.MustCompile(`^[a-z0-9+._-]+$`)

var (
	defaultLanguages     LanguageSet
	defaultLanguagesOnce sync.Once
)

// DefaultLanguages returns every lexer name and alias known to chroma.
// The result is shared and must not be modified.
func DefaultLanguages() LanguageSet {
	defaultLanguagesOnce.Do(func() {
		defaultLanguages = NewLanguageSet(lexers.Names(true)...)
	})
	return defaultLanguages
}

// NewLanguageSet builds a set from names, ignoring blanks.
func NewLanguageSet(names ...string) LanguageSet {
	set := make(LanguageSet, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			set[name] = struct{}{}
		}
	}
	return set
}

// Len returns the number of tags in the set.
func (s LanguageSet) Len() int {
	return len(s)
}

// Contains reports whether tag is in the set, case-insensitively.
func (s LanguageSet) Contains(tag string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}

// Resolve maps a fence tag to the name passed to minted.
// A tag in the set resolves to itself, lower cased. Otherwise the tag is
// treated as a linguist alias (py, sh, yml) and its canonical language
// name is looked up in the set. Names that cannot appear in a LaTeX
// argument (c#, common lisp) are swapped for a plain alias of the same
// lexer, or rejected when there is none.
func (s LanguageSet) Resolve(tag string) (string, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return "", false
	}
	if _, ok := s[tag]; ok {
		return mintedName(tag)
	}
	lang, ok := enry.GetLanguageByAlias(tag)
	if !ok {
		return "", false
	}
	lang = strings.ToLower(lang)
	if _, ok := s[lang]; ok {
		return mintedName(lang)
	}
	return "", false
}

// mintedName returns lang when it is a safe minted argument, else the first
// safe alias chroma registers for the same lexer.
func mintedName(lang string) (string, bool) {
	if mintedArgument.MatchString(lang) {
		return lang, true
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false
	}
	for _, alias := range lexer.Config().Aliases {
		alias = strings.ToLower(alias)
		if mintedArgument.MatchString(alias) {
			return alias, true
		}
	}
	return "", false
}

// Lexer reports whether chroma knows a lexer for tag. Configured languages
// without one are unlikely to be accepted by Pygments.
func Lexer(tag string) bool {
	return lexers.Get(tag) != nil
}
