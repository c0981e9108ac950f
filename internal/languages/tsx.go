package languages

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

type tsxPlugin struct {
	grammar *sitter.Language
}

func newTSXPlugin() *tsxPlugin {
	return &tsxPlugin{grammar: tsx.GetLanguage()}
}

func (p *tsxPlugin) ID() string                { return "tsx" }
func (p *tsxPlugin) Grammar() *sitter.Language { return p.grammar }
func (p *tsxPlugin) FileExtensions() []string  { return []string{".tsx"} }
