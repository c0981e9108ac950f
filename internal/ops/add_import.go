package ops

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/format"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/query"
)

// execAddImport implements add_import. If an import declaration with the
// same source and type_only flag exists, its named-imports list is
// merged in place; otherwise a new import line is built and inserted
// after the last existing import (or at file start).
func execAddImport(c *Context, op Operation) ([]edit.TextEdit, error) {
	if op.Source == "" {
		return nil, NewError(c.OpIndex, InvalidParams, "add_import requires source")
	}
	if c.Tree.Language() == "css" {
		return nil, NewError(c.OpIndex, InvalidParams, "add_import has no CSS equivalent")
	}

	set, ok := query.For(c.Tree.Language())
	if !ok {
		return nil, NewError(c.OpIndex, UnsupportedLanguage, fmt.Sprintf("language %q not supported", c.Tree.Language()))
	}

	importNodes, err := query.Nodes(c.Tree, c.Tree.Root(), set.Imports)
	if err != nil {
		return nil, NewError(c.OpIndex, InvalidParams, err.Error())
	}

	for _, n := range importNodes {
		if importSourceText(c.Tree, n) == op.Source && isTypeOnlyImport(c.Tree, n) == op.TypeOnly {
			return mergeIntoImport(c, op, n)
		}
	}

	return insertNewImport(c, op, importNodes)
}

func mergeIntoImport(c *Context, op Operation, existing *sitter.Node) ([]edit.TextEdit, error) {
	clause := importClauseOf(existing)
	namedImports := namedImportsOf(clause)

	var missing []string
	if namedImports != nil {
		present := make(map[string]bool)
		for _, name := range namedSpecifierNames(c.Tree, namedImports) {
			present[name] = true
		}
		for _, spec := range op.Specifiers {
			if !present[spec] {
				missing = append(missing, spec)
			}
		}
	} else {
		missing = op.Specifiers
	}

	if len(missing) == 0 {
		// Idempotent: every requested specifier is already present.
		return nil, nil
	}

	if namedImports != nil {
		all := append(namedSpecifierNames(c.Tree, namedImports), missing...)
		replacement := "{ " + strings.Join(all, ", ") + " }"
		return []edit.TextEdit{
			edit.NewTextEdit(int(namedImports.StartByte()), int(namedImports.EndByte()), replacement, "add_import", 0, c.OpIndex),
		}, nil
	}

	// No named-imports list yet: insert one after the default import
	// (or as the clause itself, for a side-effect-only import).
	insertion := "{ " + strings.Join(missing, ", ") + " }"
	if defaultNode := defaultImportOf(clause); defaultNode != nil {
		return []edit.TextEdit{
			edit.NewTextEdit(int(defaultNode.EndByte()), int(defaultNode.EndByte()), ", "+insertion, "add_import", 0, c.OpIndex),
		}, nil
	}
	if clause != nil {
		return []edit.TextEdit{
			edit.NewTextEdit(int(clause.StartByte()), int(clause.EndByte()), insertion, "add_import", 0, c.OpIndex),
		}, nil
	}
	// Side-effect-only import ("import './x'"): insert a clause before "from".
	src := importSourceNode(existing)
	return []edit.TextEdit{
		edit.NewTextEdit(int(src.StartByte()), int(src.StartByte()), insertion+" from ", "add_import", 0, c.OpIndex),
	}, nil
}

func insertNewImport(c *Context, op Operation, existingImports []*sitter.Node) ([]edit.TextEdit, error) {
	quote := format.QuoteStyleOf(sampleQuoteLiteral(c), styleFromDefaults(c.Defaults.QuoteStyle))
	line := buildImportLine(op, quote)

	if len(existingImports) > 0 {
		last := existingImports[len(existingImports)-1]
		insertAt := int(last.EndByte())
		return []edit.TextEdit{
			edit.NewTextEdit(insertAt, insertAt, "\n"+line, "add_import", 0, c.OpIndex),
		}, nil
	}

	return []edit.TextEdit{
		edit.NewTextEdit(0, 0, line+"\n", "add_import", 0, c.OpIndex),
	}, nil
}

func buildImportLine(op Operation, quote format.QuoteStyle) string {
	var b strings.Builder
	b.WriteString("import ")
	if op.TypeOnly {
		b.WriteString("type ")
	}

	hasDefault := op.DefaultImport != ""
	hasNamed := len(op.Specifiers) > 0

	if hasDefault {
		b.WriteString(op.DefaultImport)
		if hasNamed {
			b.WriteString(", ")
		}
	}
	if hasNamed {
		b.WriteString("{ ")
		b.WriteString(strings.Join(op.Specifiers, ", "))
		b.WriteString(" }")
	}
	if !hasDefault && !hasNamed {
		// Side-effect-only import: no clause at all.
		b.WriteString(format.Quote(op.Source, quote))
		b.WriteString(";")
		return b.String()
	}
	b.WriteString(" from ")
	b.WriteString(format.Quote(op.Source, quote))
	b.WriteString(";")
	return b.String()
}

func sampleQuoteLiteral(c *Context) string {
	nodes, err := query.Nodes(c.Tree, c.Tree.Root(), `(string) @node`)
	if err != nil || len(nodes) == 0 {
		return ""
	}
	return c.Tree.Text(nodes[0])
}

func styleFromDefaults(s string) format.QuoteStyle {
	if s == "double" {
		return format.Double
	}
	return format.Single
}
