package ops

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/query"
)

// execRenameSymbol implements rename_symbol: replace every identifier
// reference matching From with To, optionally restricted to the
// declaration named by Scope.
//
// Only identifier-like nodes (the kinds listed in the language's
// query.Set.Identifiers pattern, or, for CSS, selector-name nodes) are
// ever candidates: string and comment content is a single leaf token in
// every grammar this engine parses, so it never contains an identifier
// sub-node. Targeting identifier node kinds therefore excludes
// string/comment occurrences by construction, without a separate
// exclusion pass.
func execRenameSymbol(c *Context, op Operation) ([]edit.TextEdit, error) {
	if op.From == "" || op.To == "" {
		return nil, NewError(c.OpIndex, InvalidParams, "rename_symbol requires non-empty from and to")
	}

	candidates, err := identifierCandidates(c)
	if err != nil {
		return nil, err
	}

	var scopeNode *sitter.Node
	if op.Scope != "" {
		scopeNode, err = findUniqueScope(c.Tree, c.OpIndex, op.Scope)
		if err != nil {
			return nil, err
		}
	}

	var matches []*sitter.Node
	for _, n := range candidates {
		if c.Tree.Text(n) != op.From {
			continue
		}
		if scopeNode != nil && !withinSpan(n, scopeNode) {
			continue
		}
		matches = append(matches, n)
	}

	if len(matches) == 0 {
		return nil, NewError(c.OpIndex, SymbolNotFound, fmt.Sprintf("no occurrences of %q found", op.From))
	}

	edits := make([]edit.TextEdit, 0, len(matches))
	for _, n := range matches {
		edits = append(edits, edit.NewTextEdit(int(n.StartByte()), int(n.EndByte()), op.To, "rename_symbol", 0, c.OpIndex))
	}
	return edits, nil
}

func identifierCandidates(c *Context) ([]*sitter.Node, error) {
	if c.Tree.Language() == "css" {
		nodes, err := query.CSSSelectorNodes(c.Tree, c.Tree.Root())
		if err != nil {
			return nil, NewError(c.OpIndex, InvalidParams, err.Error())
		}
		return nodes, nil
	}

	set, ok := query.For(c.Tree.Language())
	if !ok {
		return nil, NewError(c.OpIndex, UnsupportedLanguage, fmt.Sprintf("language %q not supported", c.Tree.Language()))
	}
	nodes, err := query.Nodes(c.Tree, c.Tree.Root(), set.Identifiers)
	if err != nil {
		return nil, NewError(c.OpIndex, InvalidParams, err.Error())
	}
	return nodes, nil
}
