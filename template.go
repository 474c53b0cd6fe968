package md2tex

import (
	"strings"

	"github.com/alnah/go-md2tex/internal/pipeline"
)

// Tokens replaced in a document template.
const (
	BodyToken  = "@@BODYTOKEN@@"
	TitleToken = "@@TITLETOKEN@@"
	DateToken  = "@@DATETOKEN@@"
)

// TemplateOption sets extra values substituted by ApplyTemplate.
type TemplateOption func(*templateValues)

type templateValues struct {
	date string
}

// WithDate fills DateToken with date, escaped for LaTeX.
// Without it the token is removed.
func WithDate(date string) TemplateOption {
	return func(v *templateValues) {
		v.date = date
	}
}

// ApplyTemplate substitutes the converted body and the escaped title into
// shell. The shell must hold BodyToken; TitleToken and DateToken are optional.
func ApplyTemplate(shell string, result *ConvertResult, opts ...TemplateOption) (string, error) {
	if !strings.Contains(shell, BodyToken) {
		return "", ErrTemplateNoBody
	}
	var values templateValues
	for _, opt := range opts {
		opt(&values)
	}

	var body, title string
	if result != nil {
		body = result.TeX
		title = pipeline.EscapeText(result.Title)
	}
	return strings.NewReplacer(
		BodyToken, body,
		TitleToken, title,
		DateToken, pipeline.EscapeText(values.date),
	).Replace(shell), nil
}
