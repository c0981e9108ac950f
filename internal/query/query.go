// Package query is the per-language pattern library: compiled
// tree-sitter queries that locate imports, function-like declarations,
// identifier references, JSX elements, and CSS rules, returned as
// structured matches the operation executors consume.
package query

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
)

// Set is the named patterns one language contributes. Every field is a
// tree-sitter query string matched against a CST's root (or a scoped
// sub-node); the capture name "node" is the match's anchor.
type Set struct {
	Imports     string
	Functions   string
	Identifiers string
	Blocks      string
	JSXElements string
}

// jsIdentifierKinds covers every node kind tree-sitter-javascript uses for
// an identifier-like reference: plain identifiers, object-literal/property
// keys, and shorthand `{ name }` properties and destructuring patterns. A
// rename that only matched `identifier` would silently skip occurrences
// like the `name` in `const obj = { name };`.
const jsIdentifierKinds = `[(identifier) (property_identifier) (shorthand_property_identifier) (shorthand_property_identifier_pattern)] @node`

// tsIdentifierKinds additionally covers `type_identifier`, the node kind
// tree-sitter-typescript uses for a bare type reference (`type X = name;`),
// which has no counterpart in the plain JavaScript grammar.
const tsIdentifierKinds = `[(identifier) (property_identifier) (shorthand_property_identifier) (shorthand_property_identifier_pattern) (type_identifier)] @node`

// jsFamily holds the query strings shared by javascript and jsx, which
// parse under the same tree-sitter-javascript grammar.
var jsFamily = Set{
	Imports:     `(import_statement) @node`,
	Functions:   `[(function_declaration) (function_expression) (generator_function_declaration) (arrow_function) (method_definition)] @node`,
	Identifiers: jsIdentifierKinds,
	Blocks:      `(statement_block) @node`,
	JSXElements: `[(jsx_element) (jsx_self_closing_element)] @node`,
}

// tsFamily holds the query strings shared by typescript and tsx.
var tsFamily = Set{
	Imports:     `(import_statement) @node`,
	Functions:   `[(function_declaration) (function_expression) (generator_function_declaration) (arrow_function) (method_definition)] @node`,
	Identifiers: tsIdentifierKinds,
	Blocks:      `(statement_block) @node`,
	JSXElements: `[(jsx_element) (jsx_self_closing_element)] @node`,
}

// For returns the query Set registered for a language tag. CSS has no
// Set: its constructs (selectors, declarations) are queried through
// CSSSelectorNodes/CSSDeclarations in css.go instead of the shared Set shape,
// since CSS has no imports, functions, or JSX to speak of.
func For(language string) (Set, bool) {
	switch language {
	case "javascript", "jsx":
		return jsFamily, true
	case "typescript", "tsx":
		return tsFamily, true
	default:
		return Set{}, false
	}
}

// Nodes runs a query and returns just the matched anchor nodes, in
// document order, for callers that don't need named sub-captures.
func Nodes(tree *cst.CST, scope *sitter.Node, pattern string) ([]*sitter.Node, error) {
	if scope == nil {
		scope = tree.Root()
	}
	matches, err := tree.Query(scope, pattern)
	if err != nil {
		return nil, err
	}
	out := make([]*sitter.Node, 0, len(matches))
	for _, m := range matches {
		if n, ok := m.Captures["node"]; ok {
			out = append(out, n)
		} else if m.Node != nil {
			out = append(out, m.Node)
		}
	}
	return out, nil
}
