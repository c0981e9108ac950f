package ops

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/query"
)

// paramList returns the parameter nodes of a formal_parameters list, in
// order, skipping the punctuation tokens ("(", ",", ")").
func paramList(params *sitter.Node) []*sitter.Node {
	return cst.NamedChildren(params)
}

// paramName resolves the declared name of a parameter node, whichever
// shape it takes: a bare identifier, a TypeScript typed/optional
// parameter (field "pattern"), a default-valued parameter (field
// "left"), or a rest parameter — by taking the first identifier found
// inside it.
func paramName(tree *cst.CST, param *sitter.Node) string {
	if param.Type() == "identifier" {
		return tree.Text(param)
	}
	for _, field := range []string{"pattern", "left"} {
		if n := param.ChildByFieldName(field); n != nil {
			return paramName(tree, n)
		}
	}
	nodes, err := query.Nodes(tree, param, `(identifier) @node`)
	if err != nil || len(nodes) == 0 {
		return ""
	}
	return tree.Text(nodes[0])
}

// separatorAfter returns the byte offset just past the "," that follows
// target within list, or target's own end if there is none.
func separatorAfter(list, target *sitter.Node) int {
	children := cst.Children(list)
	for i, ch := range children {
		if ch.StartByte() == target.StartByte() && ch.EndByte() == target.EndByte() {
			for j := i + 1; j < len(children); j++ {
				if children[j].Type() == "," {
					return int(children[j].EndByte())
				}
			}
			break
		}
	}
	return int(target.EndByte())
}

// separatorBefore returns the byte offset of the "," that precedes
// target within list, or -1 if there is none.
func separatorBefore(list, target *sitter.Node) int {
	children := cst.Children(list)
	for i, ch := range children {
		if ch.StartByte() == target.StartByte() && ch.EndByte() == target.EndByte() {
			for j := i - 1; j >= 0; j-- {
				if children[j].Type() == "," {
					return int(children[j].StartByte())
				}
			}
			break
		}
	}
	return -1
}

// trailingComma returns the "," token that appears after the last named
// parameter and before the closing ")", or nil if the list has none.
func trailingComma(list *sitter.Node, params []*sitter.Node) *sitter.Node {
	if len(params) == 0 {
		return nil
	}
	last := params[len(params)-1]
	children := cst.Children(list)
	for i, ch := range children {
		if ch.StartByte() == last.StartByte() && ch.EndByte() == last.EndByte() {
			for j := i + 1; j < len(children); j++ {
				if children[j].Type() == "," {
					return children[j]
				}
				if children[j].Type() == ")" {
					return nil
				}
			}
		}
	}
	return nil
}
