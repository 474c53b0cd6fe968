// Package md2tex converts Markdown documents to LaTeX.
//
// # Quick Start
//
//	conv, err := md2tex.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2tex.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.tex", []byte(result.TeX), 0o644)
//
// The result holds the LaTeX body, the document title (text of the first
// level 1 heading) and conversion statistics.
//
// # Conversion Pipeline
//
// The conversion is a fixed sequence of text rewriting stages:
//
//  1. Line ending normalization and reserved rune escaping
//  2. Fenced code blocks to minted listings or verbatim environments
//  3. Protection of those environments, LaTeX escaping of the rest
//  4. Quotes and block quotes
//  5. Unordered and ordered lists, with nesting from indentation
//  6. Footnotes or endnotes
//  7. Headings to sectioning commands
//  8. Emphasis, inline code, images, links, rules and line breaks
//  9. Whitespace cleanup and reinjection of the protected environments
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2tex.NewConverter(
//	    md2tex.WithQuoteStyle(md2tex.QuoteFrench),
//	    md2tex.WithFootnoteStyle(md2tex.Endnotes),
//	    md2tex.WithHeaderNumbering(md2tex.Unnumbered),
//	    md2tex.WithLanguages("go", "python"),
//	)
//
// # Complete Documents
//
// Convert produces a body only. Wrap it in a document template holding
// the @@BODYTOKEN@@ marker, and optionally @@TITLETOKEN@@ and @@DATETOKEN@@:
//
//	loader, err := md2tex.NewTemplateLoader("/path/to/assets")
//	shell, err := loader.LoadTemplate(md2tex.DefaultTemplate)
//	doc, err := md2tex.ApplyTemplate(shell, result, md2tex.WithDate("2026-01-02"))
//
// Templates are looked up as {dir}/templates/{name}.tex, falling back to
// the built-in set.
//
// # LaTeX Requirements
//
// Highlighted code uses the minted package, which needs Pygments and
// -shell-escape. French quotes need csquotes, endnotes need endnotes.
package md2tex
