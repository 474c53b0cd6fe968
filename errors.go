package md2tex

import (
	"errors"

	"github.com/alnah/go-md2tex/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Conversion errors.
	ErrIndentation     = pipeline.ErrIndentation
	ErrTokenCollision  = pipeline.ErrTokenCollision
	ErrPlaceholderLost = pipeline.ErrPlaceholderLost

	// Option validation errors.
	ErrInvalidQuoteStyle      = errors.New("invalid quote style")
	ErrInvalidFootnoteStyle   = errors.New("invalid footnote style")
	ErrInvalidHeaderNumbering = errors.New("invalid header numbering")
	ErrInvalidLanguage        = errors.New("invalid highlight language")

	// Template errors.
	ErrTemplateNoBody   = errors.New("template has no body token")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// IndentationError reports a list whose indentation cannot be mapped to
// nesting levels. It matches ErrIndentation with errors.Is.
type IndentationError = pipeline.IndentationError

// IndentReason tells why a list's indentation was rejected.
type IndentReason = pipeline.IndentReason

// Indentation failure reasons.
const (
	BelowBaseline = pipeline.BelowBaseline
	NotMultiple   = pipeline.NotMultiple
)
