package ops

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
)

// execMakeAsync implements make_async: prefix the target function with
// the "async" keyword. A function already declared async is a no-op.
func execMakeAsync(c *Context, op Operation) ([]edit.TextEdit, error) {
	if op.FunctionName == "" {
		return nil, NewError(c.OpIndex, InvalidParams, "make_async requires function_name")
	}
	if c.Tree.Language() == "css" {
		return nil, NewError(c.OpIndex, InvalidParams, "make_async has no CSS equivalent")
	}

	fn, err := findFunctionByName(c.Tree, c.OpIndex, op.FunctionName)
	if err != nil {
		return nil, err
	}

	if alreadyAsync(fn) {
		return nil, nil
	}

	at := asyncInsertionPoint(fn)
	return []edit.TextEdit{
		edit.NewTextEdit(int(at), int(at), "async ", "make_async", 0, c.OpIndex),
	}, nil
}

// asyncInsertionPoint returns the byte offset at which to insert the
// "async " keyword. For a method_definition, modifiers like "static" and
// "get"/"set" precede the method name within the same node, and the
// keyword order valid in JS/TS is "static async name()" — inserting at
// the node's own start would instead produce the invalid "async static
// name()". Every other function-like node has no leading modifier field,
// so inserting at its own start is correct.
func asyncInsertionPoint(fn *sitter.Node) uint32 {
	if fn.Type() == "method_definition" {
		if name := fn.ChildByFieldName("name"); name != nil {
			return name.StartByte()
		}
	}
	return fn.StartByte()
}

// alreadyAsync reports whether the function-like node already carries
// an "async" keyword child. Named function_declaration/method
// definitions and arrow/function expressions alike expose it as an
// anonymous direct child token, not a named field.
func alreadyAsync(fn *sitter.Node) bool {
	count := int(fn.ChildCount())
	for i := 0; i < count; i++ {
		if ch := fn.Child(i); ch != nil && ch.Type() == "async" {
			return true
		}
	}
	return false
}
