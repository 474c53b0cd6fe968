package assets

import (
	"fmt"
	"strings"
	"unicode"
)

// DefaultTemplateName is the built-in template used when none is configured.
const DefaultTemplateName = "default"

// AssetLoader defines the contract for loading LaTeX templates.
type AssetLoader interface {
	// LoadTemplate loads a template by name (without .tex extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// ValidateAssetName checks that a template name can be used as a bare
// file name: not empty, no path separator, no dot, no whitespace.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\.`) || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
