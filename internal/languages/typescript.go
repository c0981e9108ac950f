package languages

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

type typeScriptPlugin struct {
	grammar *sitter.Language
}

func newTypeScriptPlugin() *typeScriptPlugin {
	return &typeScriptPlugin{grammar: typescript.GetLanguage()}
}

func (p *typeScriptPlugin) ID() string                { return "typescript" }
func (p *typeScriptPlugin) Grammar() *sitter.Language { return p.grammar }
func (p *typeScriptPlugin) FileExtensions() []string  { return []string{".ts", ".mts", ".cts"} }
