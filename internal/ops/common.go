package ops

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/config"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/query"
)

const classDeclarationQuery = `(class_declaration) @node`

// Context is the per-operation state every executor receives: the
// parsed tree it runs against (shared, read-only, across every
// operation in one pipeline run) and the request-level operation index
// used to tag produced edits and errors.
type Context struct {
	Tree     *cst.CST
	OpIndex  int
	Defaults config.FormattingConfig
}

// functionName returns the declared name of a function-like node,
// whether it is a named function_declaration/method_definition or an
// arrow_function/function_expression assigned to a variable_declarator.
func functionName(tree *cst.CST, n *sitter.Node) (string, bool) {
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		return tree.Text(nameNode), true
	}
	if parent := n.Parent(); parent != nil && parent.Type() == "variable_declarator" {
		if nameNode := parent.ChildByFieldName("name"); nameNode != nil {
			return tree.Text(nameNode), true
		}
	}
	return "", false
}

// findNamedFunctions indexes every function-like declaration in scope
// (default: the whole file) by its resolved name.
func findNamedFunctions(tree *cst.CST, scope *sitter.Node) (map[string][]*sitter.Node, error) {
	set, ok := query.For(tree.Language())
	if !ok {
		return nil, fmt.Errorf("unsupported language %q", tree.Language())
	}
	nodes, err := query.Nodes(tree, scope, set.Functions)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]*sitter.Node)
	for _, n := range nodes {
		name, ok := functionName(tree, n)
		if !ok {
			continue
		}
		out[name] = append(out[name], n)
	}
	return out, nil
}

// findFunctionByName resolves exactly one function-like declaration
// named name, or reports SYMBOL_NOT_FOUND / AMBIGUOUS_MATCH.
func findFunctionByName(tree *cst.CST, opIndex int, name string) (*sitter.Node, error) {
	byName, err := findNamedFunctions(tree, tree.Root())
	if err != nil {
		return nil, NewError(opIndex, InvalidParams, err.Error())
	}
	matches := byName[name]
	switch len(matches) {
	case 0:
		return nil, NewError(opIndex, SymbolNotFound, fmt.Sprintf("no function named %q", name))
	case 1:
		return matches[0], nil
	default:
		return nil, NewError(opIndex, AmbiguousMatch, fmt.Sprintf("function name %q is ambiguous: %d declarations match", name, len(matches)))
	}
}

// findUniqueScope resolves the enclosing declaration (function-like or
// class) named name, used by rename_symbol's scope parameter.
func findUniqueScope(tree *cst.CST, opIndex int, name string) (*sitter.Node, error) {
	byName, err := findNamedFunctions(tree, tree.Root())
	if err != nil {
		return nil, NewError(opIndex, InvalidParams, err.Error())
	}
	var matches []*sitter.Node
	matches = append(matches, byName[name]...)

	classNodes, err := query.Nodes(tree, tree.Root(), classDeclarationQuery)
	if err != nil {
		return nil, NewError(opIndex, InvalidParams, err.Error())
	}
	for _, n := range classNodes {
		if nameNode := n.ChildByFieldName("name"); nameNode != nil && tree.Text(nameNode) == name {
			matches = append(matches, n)
		}
	}

	switch len(matches) {
	case 0:
		return nil, NewError(opIndex, SymbolNotFound, fmt.Sprintf("scope %q not found", name))
	case 1:
		return matches[0], nil
	default:
		return nil, NewError(opIndex, AmbiguousMatch, fmt.Sprintf("scope %q is ambiguous: %d declarations match", name, len(matches)))
	}
}

// withinSpan reports whether node's byte range is entirely inside
// [scope.StartByte(), scope.EndByte()).
func withinSpan(node, scope *sitter.Node) bool {
	return node.StartByte() >= scope.StartByte() && node.EndByte() <= scope.EndByte()
}

// bodyBlockOf returns the statement-block body of a function-like node,
// via the grammar's "body" field.
func bodyBlockOf(n *sitter.Node) *sitter.Node {
	return n.ChildByFieldName("body")
}
