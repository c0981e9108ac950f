package ops

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/query"
)

// execRemoveImport implements remove_import. With no specifiers, every
// whole import declaration matching source is removed, trailing newline
// included. With specifiers given, only the entries they name (named
// specifiers or the default import) are stripped; if that empties the declaration (no default, no named, no
// namespace import left) the whole declaration is removed too.
func execRemoveImport(c *Context, op Operation) ([]edit.TextEdit, error) {
	if op.Source == "" {
		return nil, NewError(c.OpIndex, InvalidParams, "remove_import requires source")
	}
	if c.Tree.Language() == "css" {
		return nil, NewError(c.OpIndex, InvalidParams, "remove_import has no CSS equivalent")
	}

	set, ok := query.For(c.Tree.Language())
	if !ok {
		return nil, NewError(c.OpIndex, UnsupportedLanguage, fmt.Sprintf("language %q not supported", c.Tree.Language()))
	}

	importNodes, err := query.Nodes(c.Tree, c.Tree.Root(), set.Imports)
	if err != nil {
		return nil, NewError(c.OpIndex, InvalidParams, err.Error())
	}

	var matched []*sitter.Node
	for _, n := range importNodes {
		if importSourceText(c.Tree, n) == op.Source {
			matched = append(matched, n)
		}
	}
	if len(matched) == 0 {
		return nil, NewError(c.OpIndex, SymbolNotFound, fmt.Sprintf("no import from %q found", op.Source))
	}

	if len(op.Specifiers) == 0 {
		var edits []edit.TextEdit
		for _, n := range matched {
			edits = append(edits, removeWholeDeclaration(c, n)...)
		}
		return edits, nil
	}

	var edits []edit.TextEdit
	var anyChange bool
	for _, n := range matched {
		es, changed := removeSpecifiersFrom(c, n, op.Specifiers)
		edits = append(edits, es...)
		anyChange = anyChange || changed
	}
	if !anyChange {
		// Idempotent: none of the named specifiers were present.
		return nil, nil
	}
	return edits, nil
}

func removeWholeDeclaration(c *Context, n *sitter.Node) []edit.TextEdit {
	start := int(n.StartByte())
	end := int(n.EndByte())
	source := c.Tree.Source()
	// Consume the trailing newline, if any, so removal leaves no blank line.
	if end < len(source) && source[end] == '\n' {
		end++
	}
	return []edit.TextEdit{edit.NewTextEdit(start, end, "", "remove_import", 0, c.OpIndex)}
}

func removeSpecifiersFrom(c *Context, n *sitter.Node, toRemove []string) ([]edit.TextEdit, bool) {
	remove := make(map[string]bool, len(toRemove))
	for _, s := range toRemove {
		remove[s] = true
	}

	clause := importClauseOf(n)
	namedImports := namedImportsOf(clause)
	defaultNode := defaultImportOf(clause)

	kept := []string{}
	changed := false
	namedChanged := false
	if namedImports != nil {
		for _, name := range namedSpecifierNames(c.Tree, namedImports) {
			if remove[name] {
				changed = true
				namedChanged = true
				continue
			}
			kept = append(kept, name)
		}
	}
	var removedDefault *sitter.Node
	if defaultNode != nil && remove[c.Tree.Text(defaultNode)] {
		changed = true
		removedDefault = defaultNode
		defaultNode = nil
	}

	if !changed {
		return nil, false
	}

	empty := defaultNode == nil && len(kept) == 0 && !isNamespaceImport(clause)
	if empty {
		return removeWholeDeclaration(c, n), true
	}

	var edits []edit.TextEdit
	if removedDefault != nil {
		// Drop the default import together with the comma joining it to
		// the named or namespace import that follows.
		if next := removedDefault.NextNamedSibling(); next != nil {
			edits = append(edits, edit.NewTextEdit(int(removedDefault.StartByte()), int(next.StartByte()), "", "remove_import", 0, c.OpIndex))
		}
	}

	if namedImports == nil {
		// A namespace import remains; only the default needed removing.
		return edits, changed
	}

	if len(kept) == 0 {
		// Remove the now-empty named-imports clause, including a
		// preceding default's trailing comma if present.
		start := int(namedImports.StartByte())
		if defaultNode != nil {
			start = int(defaultNode.EndByte())
		}
		return []edit.TextEdit{
			edit.NewTextEdit(start, int(namedImports.EndByte()), "", "remove_import", 0, c.OpIndex),
		}, true
	}

	if namedChanged {
		replacement := "{ " + strings.Join(kept, ", ") + " }"
		edits = append(edits, edit.NewTextEdit(int(namedImports.StartByte()), int(namedImports.EndByte()), replacement, "remove_import", 0, c.OpIndex))
	}
	return edits, true
}
