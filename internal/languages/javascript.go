package languages

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

type javaScriptPlugin struct {
	grammar *sitter.Language
}

func newJavaScriptPlugin() *javaScriptPlugin {
	return &javaScriptPlugin{grammar: javascript.GetLanguage()}
}

func (p *javaScriptPlugin) ID() string                { return "javascript" }
func (p *javaScriptPlugin) Grammar() *sitter.Language { return p.grammar }
func (p *javaScriptPlugin) FileExtensions() []string  { return []string{".js", ".mjs", ".cjs"} }

// jsxPlugin reuses the JavaScript grammar: tree-sitter-javascript parses
// JSX syntax natively, so "jsx" is a distinct wire tag sharing one grammar.
type jsxPlugin struct {
	grammar *sitter.Language
}

func newJSXPlugin() *jsxPlugin {
	return &jsxPlugin{grammar: javascript.GetLanguage()}
}

func (p *jsxPlugin) ID() string                { return "jsx" }
func (p *jsxPlugin) Grammar() *sitter.Language { return p.grammar }
func (p *jsxPlugin) FileExtensions() []string  { return []string{".jsx"} }
