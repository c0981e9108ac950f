package query

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
)

// cssSelectorQuery matches the identifier-like nodes a rename can target
// in a stylesheet: class names, id names, tag (element) names, and
// custom-property / declaration property names.
const cssSelectorQuery = `[(class_name) (id_name) (tag_name) (property_name)] @node`

// cssDeclarationQuery matches whole declaration nodes, used when an
// executor needs the enclosing declaration rather than just the name.
const cssDeclarationQuery = `(declaration) @node`

// CSSSelectorNodes returns every class/id/tag/property name node in the
// stylesheet, the CSS analogue of an identifier reference.
func CSSSelectorNodes(tree *cst.CST, scope *sitter.Node) ([]*sitter.Node, error) {
	return Nodes(tree, scope, cssSelectorQuery)
}

// CSSDeclarations returns every declaration node (a "property: value;"
// pair) in the stylesheet.
func CSSDeclarations(tree *cst.CST, scope *sitter.Node) ([]*sitter.Node, error) {
	return Nodes(tree, scope, cssDeclarationQuery)
}
