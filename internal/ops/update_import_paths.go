package ops

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/query"
)

// execUpdateImportPaths implements update_import_paths: rewrite every
// import/re-export/dynamic-import source string that matches old_path
// under the given match mode, to new_path (preserving any matched
// prefix's tail under "prefix" mode).
func execUpdateImportPaths(c *Context, op Operation) ([]edit.TextEdit, error) {
	if op.OldPath == "" || op.NewPath == "" {
		return nil, NewError(c.OpIndex, InvalidParams, "update_import_paths requires old_path and new_path")
	}
	mode := op.MatchMode
	if mode == "" {
		mode = "exact"
	}
	if mode != "exact" && mode != "prefix" {
		return nil, NewError(c.OpIndex, InvalidParams, fmt.Sprintf("unknown match_mode %q", mode))
	}
	if c.Tree.Language() == "css" {
		return nil, NewError(c.OpIndex, InvalidParams, "update_import_paths has no CSS equivalent")
	}

	stringNodes, err := importLikeStringLiterals(c)
	if err != nil {
		return nil, err
	}

	var edits []edit.TextEdit
	for _, n := range stringNodes {
		quoted := c.Tree.Text(n)
		value := strings.Trim(quoted, `"'`)
		quoteChar := quoted[:1]

		var newValue string
		matched := false
		switch mode {
		case "exact":
			if value == op.OldPath {
				newValue = op.NewPath
				matched = true
			}
		case "prefix":
			if strings.HasPrefix(value, op.OldPath) {
				newValue = op.NewPath + strings.TrimPrefix(value, op.OldPath)
				matched = true
			}
		}
		if !matched {
			continue
		}
		edits = append(edits, edit.NewTextEdit(
			int(n.StartByte()), int(n.EndByte()),
			quoteChar+newValue+quoteChar,
			"update_import_paths", 0, c.OpIndex,
		))
	}

	if len(edits) == 0 {
		return nil, NewError(c.OpIndex, SymbolNotFound, fmt.Sprintf("no import path matched %q", op.OldPath))
	}
	return edits, nil
}

// importLikeStringLiterals collects the source-string literal of every
// static import/export declaration plus the first string-literal
// argument of every dynamic import() call.
func importLikeStringLiterals(c *Context) ([]*sitter.Node, error) {
	set, ok := query.For(c.Tree.Language())
	if !ok {
		return nil, NewError(c.OpIndex, UnsupportedLanguage, fmt.Sprintf("language %q not supported", c.Tree.Language()))
	}

	var out []*sitter.Node

	importNodes, err := query.Nodes(c.Tree, c.Tree.Root(), set.Imports)
	if err != nil {
		return nil, NewError(c.OpIndex, InvalidParams, err.Error())
	}
	for _, n := range importNodes {
		if src := importSourceNode(n); src != nil {
			out = append(out, src)
		}
	}

	exportNodes, err := query.Nodes(c.Tree, c.Tree.Root(), `(export_statement) @node`)
	if err != nil {
		return nil, NewError(c.OpIndex, InvalidParams, err.Error())
	}
	for _, n := range exportNodes {
		if src := importSourceNode(n); src != nil {
			out = append(out, src)
		}
	}

	dynamicNodes, err := query.Nodes(c.Tree, c.Tree.Root(), `(call_expression function: (import)) @node`)
	if err == nil {
		for _, n := range dynamicNodes {
			if args := n.ChildByFieldName("arguments"); args != nil {
				for _, child := range cst.NamedChildren(args) {
					if child.Type() == "string" {
						out = append(out, child)
						break
					}
				}
			}
		}
	}

	return out, nil
}
