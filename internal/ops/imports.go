package ops

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
)

// importClauseOf returns the import_clause child of an import_statement,
// or nil for a side-effect-only import ("import './x'").
func importClauseOf(n *sitter.Node) *sitter.Node {
	for _, child := range cst.NamedChildren(n) {
		if child.Type() == "import_clause" {
			return child
		}
	}
	return nil
}

// importSourceNode returns the source string-literal node of an
// import_statement.
func importSourceNode(n *sitter.Node) *sitter.Node {
	if src := n.ChildByFieldName("source"); src != nil {
		return src
	}
	for _, child := range cst.Children(n) {
		if child.Type() == "string" {
			return child
		}
	}
	return nil
}

func importSourceText(tree *cst.CST, n *sitter.Node) string {
	src := importSourceNode(n)
	if src == nil {
		return ""
	}
	return strings.Trim(tree.Text(src), `"'`)
}

// isTypeOnlyImport detects TypeScript's `import type { ... } from '...'`
// form. tree-sitter-typescript represents the "type" keyword as a plain
// token rather than a distinctly-named field, so this is a textual check
// over the statement's own prefix (never over unrelated source) rather
// than a node-kind predicate.
func isTypeOnlyImport(tree *cst.CST, n *sitter.Node) bool {
	text := tree.Text(n)
	trimmed := strings.TrimSpace(text)
	rest := strings.TrimPrefix(trimmed, "import")
	rest = strings.TrimLeft(rest, " \t")
	return strings.HasPrefix(rest, "type ") || strings.HasPrefix(rest, "type{")
}

// namedImportsOf returns the named_imports node inside an import_clause,
// if any.
func namedImportsOf(clause *sitter.Node) *sitter.Node {
	if clause == nil {
		return nil
	}
	for _, child := range cst.NamedChildren(clause) {
		if child.Type() == "named_imports" {
			return child
		}
	}
	return nil
}

// defaultImportOf returns the bare default-import identifier inside an
// import_clause, if any (the identifier that is not itself nested in a
// named_imports or namespace_import node).
func defaultImportOf(clause *sitter.Node) *sitter.Node {
	if clause == nil {
		return nil
	}
	for _, child := range cst.Children(clause) {
		if child.Type() == "identifier" {
			return child
		}
	}
	return nil
}

// namedSpecifierNames returns the imported name of every import_specifier
// inside a named_imports node, in source order.
func namedSpecifierNames(tree *cst.CST, namedImports *sitter.Node) []string {
	if namedImports == nil {
		return nil
	}
	var out []string
	for _, child := range cst.NamedChildren(namedImports) {
		if child.Type() != "import_specifier" {
			continue
		}
		nameNode := child.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		out = append(out, tree.Text(nameNode))
	}
	return out
}

// isNamespaceImport reports whether clause is a `* as ns` import.
func isNamespaceImport(clause *sitter.Node) bool {
	if clause == nil {
		return false
	}
	for _, child := range cst.NamedChildren(clause) {
		if child.Type() == "namespace_import" {
			return true
		}
	}
	return false
}
