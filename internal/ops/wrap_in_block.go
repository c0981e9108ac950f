package ops

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/format"
)

// blockContainerKinds are the grammar node types whose named children
// are themselves statements, used to resolve the statement boundaries
// wrap_in_block must align to.
var blockContainerKinds = []string{"statement_block", "program", "class_body", "switch_case", "switch_default"}

// execWrapInBlock implements wrap_in_block: surround the statements
// spanning [start_line, end_line] with an if/try-catch/for-of/while
// wrapper, without re-indenting the wrapped body.
func execWrapInBlock(c *Context, op Operation) ([]edit.TextEdit, error) {
	if op.StartLine <= 0 || op.EndLine < op.StartLine {
		return nil, NewError(c.OpIndex, InvalidParams, "wrap_in_block requires 1 <= start_line <= end_line")
	}
	if c.Tree.Language() == "css" {
		return nil, NewError(c.OpIndex, InvalidParams, "wrap_in_block has no CSS equivalent")
	}

	source := c.Tree.Source()
	startOffset := cst.LineStart(source, op.StartLine)
	lineEndOffset := cst.LineEnd(source, op.EndLine)

	if err := validateStatementBoundary(c, startOffset, lineEndOffset); err != nil {
		return nil, err
	}

	indent := format.IndentAt(source, startOffset)

	prefix, suffix, err := wrapperText(c, op, indent)
	if err != nil {
		return nil, err
	}

	suffixOffset := lineEndOffset
	if suffixOffset < len(source) && source[suffixOffset] == '\n' {
		suffixOffset++
	}

	return []edit.TextEdit{
		edit.NewTextEdit(startOffset, startOffset, prefix, "wrap_in_block", 0, c.OpIndex),
		edit.NewTextEdit(suffixOffset, suffixOffset, suffix, "wrap_in_block", 0, c.OpIndex),
	}, nil
}

// validateStatementBoundary requires that [start, end) aligns exactly
// with a contiguous run of statements inside one block-like container:
// the first covered statement must begin at or after start and the
// last must end at or before end, with no partial overlap at either
// edge.
func validateStatementBoundary(c *Context, start, end int) error {
	target := deepestNodeContaining(c.Tree.Root(), start)
	if target == nil {
		return NewError(c.OpIndex, InvalidParams, "start_line is outside the file")
	}
	container := target
	if !isBlockContainer(target) {
		container = cst.NearestAncestor(target, blockContainerKinds...)
	}
	if container == nil {
		return NewError(c.OpIndex, InvalidParams, "start_line is not inside a statement block")
	}

	var covered []*sitter.Node
	for _, ch := range cst.NamedChildren(container) {
		if int(ch.EndByte()) <= start {
			continue
		}
		if int(ch.StartByte()) >= end {
			break
		}
		covered = append(covered, ch)
	}
	if len(covered) == 0 {
		return NewError(c.OpIndex, InvalidParams, "selected lines contain no statements")
	}
	if int(covered[0].StartByte()) < start || int(covered[len(covered)-1].EndByte()) > end {
		return NewError(c.OpIndex, InvalidParams, "selected lines do not align to a whole number of statements")
	}
	return nil
}

func isBlockContainer(n *sitter.Node) bool {
	for _, k := range blockContainerKinds {
		if n.Type() == k {
			return true
		}
	}
	return false
}

// deepestNodeContaining descends to the smallest node whose span
// contains offset, or nil if offset falls outside node entirely.
func deepestNodeContaining(node *sitter.Node, offset int) *sitter.Node {
	if offset < int(node.StartByte()) || offset >= int(node.EndByte()) {
		return nil
	}
	for _, ch := range cst.Children(node) {
		if offset >= int(ch.StartByte()) && offset < int(ch.EndByte()) {
			if found := deepestNodeContaining(ch, offset); found != nil {
				return found
			}
			break
		}
	}
	return node
}

// wrapperText builds the prefix/suffix pair for one wrap_kind. Only
// try_catch needs a non-trivial suffix (the catch clause); every other
// kind closes with a plain "}".
func wrapperText(c *Context, op Operation, indent string) (prefix, suffix string, err error) {
	switch op.WrapKind {
	case "if":
		if op.Condition == "" {
			return "", "", NewError(c.OpIndex, InvalidParams, "wrap_in_block with wrap_kind \"if\" requires condition")
		}
		return fmt.Sprintf("%sif (%s) {\n", indent, op.Condition), indent + "}\n", nil

	case "while":
		if op.Condition == "" {
			return "", "", NewError(c.OpIndex, InvalidParams, "wrap_in_block with wrap_kind \"while\" requires condition")
		}
		return fmt.Sprintf("%swhile (%s) {\n", indent, op.Condition), indent + "}\n", nil

	case "for_of":
		if op.Item == "" || op.Iterable == "" {
			return "", "", NewError(c.OpIndex, InvalidParams, "wrap_in_block with wrap_kind \"for_of\" requires item and iterable")
		}
		return fmt.Sprintf("%sfor (const %s of %s) {\n", indent, op.Item, op.Iterable), indent + "}\n", nil

	case "try_catch":
		param := op.Condition
		if param == "" {
			param = "err"
		}
		prefix = fmt.Sprintf("%stry {\n", indent)
		suffix = fmt.Sprintf("%s} catch (%s) {\n%s}\n", indent, param, indent)
		return prefix, suffix, nil

	case "block":
		// A bare `{ ... }` with no controlling statement, used to
		// introduce a new lexical scope around `let`/`const` without
		// changing control flow.
		return fmt.Sprintf("%s{\n", indent), indent + "}\n", nil

	default:
		return "", "", NewError(c.OpIndex, InvalidParams, fmt.Sprintf("unknown wrap_kind %q", op.WrapKind))
	}
}
