// Package languages registers the fixed set of languages the engine
// understands and binds each one to its tree-sitter grammar.
package languages

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// LanguagePlugin binds a supported language tag to its tree-sitter
// grammar and the file extensions a caller-side tool (the CLI, or any
// outer collaborator) would use to guess it.
type LanguagePlugin interface {
	// ID is the canonical language tag used on the wire, e.g. "typescript".
	ID() string

	// Grammar returns the tree-sitter language used to parse source in
	// this language. Never nil.
	Grammar() *sitter.Language

	// FileExtensions lists extensions commonly associated with this
	// language, for extension-based language detection only; the core
	// engine never inspects a file path.
	FileExtensions() []string
}
