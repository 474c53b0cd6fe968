// Package pipeline implements the Markdown-to-LaTeX conversion pipeline.
//
// The conversion is a fixed sequence of text rewriting stages, each taking
// the whole document buffer and returning a new one:
//   - Preparation (line endings, reserved rune escaping)
//   - Fenced code blocks to minted or verbatim environments
//   - Protection of those environments and LaTeX escaping of the rest
//   - Quotes and block quotes
//   - Unordered then ordered lists
//   - Footnotes and endnotes
//   - Headings to sectioning commands
//   - Inline substitutions (emphasis, code, images, links, rules, breaks)
//   - Whitespace cleanup and reinjection of protected environments
//
// Stages are plain text rewriters driven by regular expressions and small
// line scanners. There is no Markdown AST; goldmark is only used to extract
// the document title.
package pipeline
