package languages

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/css"
)

type cssPlugin struct {
	grammar *sitter.Language
}

func newCSSPlugin() *cssPlugin {
	return &cssPlugin{grammar: css.GetLanguage()}
}

func (p *cssPlugin) ID() string                { return "css" }
func (p *cssPlugin) Grammar() *sitter.Language { return p.grammar }
func (p *cssPlugin) FileExtensions() []string  { return []string{".css"} }
