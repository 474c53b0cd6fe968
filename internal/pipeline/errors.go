package pipeline

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Run.
var (
	ErrIndentation     = errors.New("inconsistent list indentation")
	ErrTokenCollision  = errors.New("input contains reserved pipeline markers")
	ErrPlaceholderLost = errors.New("protected region placeholder lost")
)

// IndentReason describes why a list was rejected.
type IndentReason int

const (
	// BelowBaseline means an item is indented less than the first item.
	BelowBaseline IndentReason = iota + 1
	// NotMultiple means an indentation is not a multiple of the smallest step.
	NotMultiple
)

func (r IndentReason) String() string {
	switch r {
	case BelowBaseline:
		return "item indented less than the first item"
	case NotMultiple:
		return "indentation is not a multiple of the smallest step"
	default:
		return "unknown indentation problem"
	}
}

// IndentationError reports a list whose item indentation cannot be mapped
// to nesting levels.
type IndentationError struct {
	List   string       // offending list text, as seen by the list stage
	Reason IndentReason // what was wrong with it
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("%v: %v in list:\n%s", ErrIndentation, e.Reason, e.List)
}

// Unwrap lets errors.Is match ErrIndentation.
func (e *IndentationError) Unwrap() error {
	return ErrIndentation
}
