package ops

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/format"
)

// execExtractToVariable implements extract_to_variable: declare a new
// variable initialized to expression immediately before the statement
// containing its first occurrence, and replace every occurrence of that
// expression with the variable name.
func execExtractToVariable(c *Context, op Operation) ([]edit.TextEdit, error) {
	if op.Expression == "" || op.VariableName == "" {
		return nil, NewError(c.OpIndex, InvalidParams, "extract_to_variable requires expression and variable_name")
	}
	if c.Tree.Language() == "css" {
		return nil, NewError(c.OpIndex, InvalidParams, "extract_to_variable has no CSS equivalent")
	}

	occurrences := matchingExpressions(c.Tree.Root(), c.Tree.Source(), op.Expression)
	if len(occurrences) == 0 {
		return nil, NewError(c.OpIndex, SymbolNotFound, fmt.Sprintf("no occurrences of expression %q found", op.Expression))
	}

	first := occurrences[0]
	stmt := cst.EnclosingStatement(first, blockContainerKinds...)
	indent := format.IndentAt(c.Tree.Source(), int(stmt.StartByte()))

	kind := op.VarKind
	if kind == "" {
		kind = "const"
	}
	// The insertion lands at the statement's own start (after its
	// indentation), so the declaration is followed by a newline and that
	// indentation again to put the statement back on its own line.
	decl := fmt.Sprintf("%s %s", kind, op.VariableName)
	if op.TypeAnnotation != "" {
		decl += ": " + op.TypeAnnotation
	}
	decl += " = " + op.Expression + ";\n" + indent

	edits := make([]edit.TextEdit, 0, len(occurrences)+1)
	edits = append(edits, edit.NewTextEdit(
		int(stmt.StartByte()), int(stmt.StartByte()), decl, "extract_to_variable", 0, c.OpIndex,
	))
	for _, n := range occurrences {
		edits = append(edits, edit.NewTextEdit(
			int(n.StartByte()), int(n.EndByte()), op.VariableName, "extract_to_variable", 0, c.OpIndex,
		))
	}
	return edits, nil
}

// matchingExpressions walks the tree for every node whose own source
// text, with whitespace runs collapsed, equals expression with
// whitespace runs likewise collapsed, in document order. The
// replaced-declaration itself is excluded implicitly: it does not
// exist yet when this walk runs.
func matchingExpressions(node *sitter.Node, source []byte, expression string) []*sitter.Node {
	want := normalizeWhitespace(expression)
	var out []*sitter.Node
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n.NamedChildCount() > 0 || isLeafExpression(n) {
			text := string(source[n.StartByte():n.EndByte()])
			if normalizeWhitespace(text) == want && isExpressionNode(n) {
				out = append(out, n)
				return // don't descend into a matched node's own subexpressions
			}
		}
		for _, ch := range cst.NamedChildren(n) {
			walk(ch)
		}
	}
	walk(node)
	return out
}

// isExpressionNode excludes statement- and declaration-level nodes from
// candidacy; only these are meaningful expression replacement targets.
func isExpressionNode(n *sitter.Node) bool {
	t := n.Type()
	return !strings.HasSuffix(t, "_statement") &&
		!strings.HasSuffix(t, "_declaration") &&
		t != "program" &&
		t != "statement_block"
}

func isLeafExpression(n *sitter.Node) bool {
	switch n.Type() {
	case "identifier", "number", "string", "true", "false", "null", "undefined", "this":
		return true
	default:
		return false
	}
}

func normalizeWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
