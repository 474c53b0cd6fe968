package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// Regions holds environments withdrawn from the buffer while the text
// stages run. Each region is replaced by a unique token that carries no
// LaTeX or Markdown special character.
type Regions struct {
	tokens  []string
	content map[string]string
}

// NewRegions returns an empty region set.
func NewRegions() *Regions {
	return &Regions{content: make(map[string]string)}
}

// Protect stores content and returns the token standing in for it.
func (r *Regions) Protect(content string) string {
	token := tokenStart + strconv.Itoa(len(r.tokens)) + tokenEnd
	r.tokens = append(r.tokens, token)
	r.content[token] = content
	return token
}

// Len returns the number of protected regions.
func (r *Regions) Len() int {
	return len(r.tokens)
}

// Reinject swaps every token in buf back for its stored content.
// It fails with ErrPlaceholderLost when a token is missing or duplicated,
// or when a stray marker is left over afterwards.
func (r *Regions) Reinject(buf string) (string, error) {
	if len(r.tokens) == 0 {
		if strings.Contains(buf, tokenStart) || strings.Contains(buf, tokenEnd) {
			return "", fmt.Errorf("%w: stray marker in output", ErrPlaceholderLost)
		}
		return buf, nil
	}

	pairs := make([]string, 0, 2*len(r.tokens))
	for i, token := range r.tokens {
		if n := strings.Count(buf, token); n != 1 {
			return "", fmt.Errorf("%w: region %d found %d times", ErrPlaceholderLost, i, n)
		}
		pairs = append(pairs, token, r.content[token])
	}
	out := strings.NewReplacer(pairs...).Replace(buf)

	// Protected content never holds markers: they were escaped on entry.
	if strings.Contains(out, tokenStart) || strings.Contains(out, tokenEnd) {
		return "", fmt.Errorf("%w: stray marker in output", ErrPlaceholderLost)
	}
	return out, nil
}
