package md2tex

import (
	"errors"

	"github.com/alnah/go-md2tex/internal/assets"
)

// DefaultTemplate is the name of the built-in document template.
const DefaultTemplate = assets.DefaultTemplateName

// BuiltinTemplates returns the names of the embedded templates, sorted.
func BuiltinTemplates() []string {
	return assets.NewEmbeddedLoader().Names()
}

// TemplateLoader loads LaTeX document templates by name.
// Implementations may load from filesystem, embedded assets, a database, etc.
type TemplateLoader interface {
	// LoadTemplate loads a template by name (without .tex extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewTemplateLoader creates a TemplateLoader for the given base path.
// If basePath is empty, only the built-in templates are available.
// Otherwise {basePath}/templates/{name}.tex takes precedence over them.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewTemplateLoader(basePath string) (TemplateLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &templateLoaderAdapter{resolver: resolver}, nil
}

// templateLoaderAdapter maps internal asset errors to public ones.
type templateLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *templateLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrTemplateNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		return &wrappedAssetError{sentinel: ErrTemplateNotFound, original: err}
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return &wrappedAssetError{sentinel: ErrInvalidAssetPath, original: err}
	default:
		return err
	}
}

// wrappedAssetError keeps the internal message but unwraps to the public
// sentinel, since internal errors cannot be matched outside the module.
type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
