package cst

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// NearestAncestor walks parent links from node (exclusive) looking for
// the closest ancestor whose Type() equals one of kinds. Returns nil if
// none is found before the root.
func NearestAncestor(node *sitter.Node, kinds ...string) *sitter.Node {
	set := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	for n := node.Parent(); n != nil; n = n.Parent() {
		if set[n.Type()] {
			return n
		}
	}
	return nil
}

// EnclosingStatement returns node itself or its nearest ancestor that is
// a direct statement-list member: the smallest such node whose parent is
// a block-like container (statement_block, program, class_body and
// similar). It is used by executors that need "the statement containing
// this expression" (e.g. extract_to_variable).
func EnclosingStatement(node *sitter.Node, blockKinds ...string) *sitter.Node {
	blocks := make(map[string]bool, len(blockKinds))
	for _, k := range blockKinds {
		blocks[k] = true
	}
	cur := node
	for cur != nil {
		parent := cur.Parent()
		if parent == nil {
			return cur
		}
		if blocks[parent.Type()] {
			return cur
		}
		cur = parent
	}
	return node
}

// NamedChildren returns the named children of node in order.
func NamedChildren(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	out := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		out[i] = node.NamedChild(i)
	}
	return out
}

// Children returns every child of node, named or anonymous, in order.
func Children(node *sitter.Node) []*sitter.Node {
	count := int(node.ChildCount())
	out := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		out[i] = node.Child(i)
	}
	return out
}

// LineStart returns the byte offset of the start of the given 1-based
// line.
func LineStart(source []byte, line int) int {
	if line <= 1 {
		return 0
	}
	seen := 1
	for i, b := range source {
		if seen == line {
			return i
		}
		if b == '\n' {
			seen++
		}
	}
	return len(source)
}

// LineEnd returns the byte offset of the end of the 1-based line
// (the offset of its trailing '\n', or len(source) if it is the last
// line and has none).
func LineEnd(source []byte, line int) int {
	start := LineStart(source, line)
	for i := start; i < len(source); i++ {
		if source[i] == '\n' {
			return i
		}
	}
	return len(source)
}

// LineColumn converts a byte offset into 1-based line and column
// numbers, counting columns in UTF-8 bytes (not runes), matching
// tree-sitter's own column accounting for ASCII source.
func LineColumn(source []byte, offset int) (line, column int) {
	line, column = 1, 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// LeadingWhitespace returns the whitespace prefix of the line containing
// offset, i.e. the indentation a sibling statement on that line uses.
func LeadingWhitespace(source []byte, offset int) string {
	start := LineStart(source, lineOf(source, offset))
	i := start
	for i < len(source) && (source[i] == ' ' || source[i] == '\t') {
		i++
	}
	return string(source[start:i])
}

func lineOf(source []byte, offset int) int {
	line, _ := LineColumn(source, offset)
	return line
}
