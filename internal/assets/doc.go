// Package assets provides the LaTeX document templates that wrap a
// converted body. Templates can be loaded from embedded files or from a
// custom directory.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// A template is a complete LaTeX document holding the body token and,
// optionally, the title token. Both are replaced by the caller.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.tex
//
// # Security
//
// Template names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
