// Package cst wraps a tree-sitter parser per supported language and
// exposes parse, query, and node-navigation primitives over the
// resulting concrete syntax tree.
//
// Parsing is total: it never fails on malformed input. A parse over
// broken source still returns a usable CST, but HasErrors reports true
// and ErrorNodes lists the offending nodes. Parse itself returns an
// error only for an unrecognized language tag or a canceled context.
package cst

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/languages"
)

// CST is a concrete syntax tree over one request's source bytes. Every
// node handle it exposes is a *sitter.Node scoped to this tree; none
// outlive a Close call, and none are shared across requests.
type CST struct {
	tree     *sitter.Tree
	source   []byte
	language string
}

// Parse parses source under the grammar registered for language. The
// returned CST is request-scoped; call Close when the caller's pipeline
// run completes.
func Parse(ctx context.Context, source []byte, language string) (*CST, error) {
	plugin, ok := languages.Default.Get(language)
	if !ok {
		return nil, fmt.Errorf("cst: unsupported language %q", language)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(plugin.Grammar())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		// go-tree-sitter only returns an error for a canceled/timed-out
		// context; a malformed program is represented in the tree itself.
		return nil, fmt.Errorf("cst: parse %s: %w", language, err)
	}

	return &CST{tree: tree, source: source, language: language}, nil
}

// Close releases the underlying tree-sitter tree. Safe to call on a nil
// CST.
func (c *CST) Close() {
	if c == nil || c.tree == nil {
		return
	}
	c.tree.Close()
}

// Root returns the tree's root node.
func (c *CST) Root() *sitter.Node {
	return c.tree.RootNode()
}

// Source returns the original byte sequence this tree was parsed from.
func (c *CST) Source() []byte {
	return c.source
}

// Language returns the wire language tag this tree was parsed under.
func (c *CST) Language() string {
	return c.language
}

// HasErrors reports whether the tree contains any ERROR or missing node.
func (c *CST) HasErrors() bool {
	return c.Root().HasError()
}

// ErrorNodes walks the tree collecting every ERROR and missing node, for
// diagnostics beyond the boolean HasErrors flag.
func (c *CST) ErrorNodes() []*sitter.Node {
	var out []*sitter.Node
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.IsError() || n.IsMissing() {
			out = append(out, n)
		}
		count := int(n.ChildCount())
		for i := 0; i < count; i++ {
			walk(n.Child(i))
		}
	}
	walk(c.Root())
	return out
}

// Slice returns the exact original bytes spanned by node.
func (c *CST) Slice(node *sitter.Node) []byte {
	return c.source[node.StartByte():node.EndByte()]
}

// Text is Slice as a string, for convenience at call sites that only
// compare or log text.
func (c *CST) Text(node *sitter.Node) string {
	return string(c.Slice(node))
}
