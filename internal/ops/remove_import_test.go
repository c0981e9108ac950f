package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/config"
)

func TestRemoveImport_RemovesWholeDeclarationWhenNoSpecifiers(t *testing.T) {
	tree := parseJS(t, "import { a } from 'lib';\nconsole.log(1);\n")
	out, err := applyOp(t, tree, Operation{Op: RemoveImport, Source: "lib"})
	require.NoError(t, err)
	assert.Equal(t, "console.log(1);\n", out)
}

func TestRemoveImport_RemovesOnlyNamedSpecifier(t *testing.T) {
	tree := parseJS(t, "import { a, b } from 'lib';\n")
	out, err := applyOp(t, tree, Operation{Op: RemoveImport, Source: "lib", Specifiers: []string{"b"}})
	require.NoError(t, err)
	assert.Equal(t, "import { a } from 'lib';\n", out)
}

func TestRemoveImport_RemovesWholeDeclarationWhenSpecifiersEmptiesIt(t *testing.T) {
	tree := parseJS(t, "import { a } from 'lib';\nconsole.log(1);\n")
	out, err := applyOp(t, tree, Operation{Op: RemoveImport, Source: "lib", Specifiers: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, "console.log(1);\n", out)
}

func TestRemoveImport_SourceNotFoundIsSymbolNotFound(t *testing.T) {
	tree := parseJS(t, "console.log(1);\n")
	_, err := Execute(tree, Operation{Op: RemoveImport, Source: "missing"}, 0, config.FormattingConfig{})
	require.Error(t, err)
	opErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, SymbolNotFound, opErr.Code)
}

func TestRemoveImport_IdempotentWhenSpecifierAlreadyAbsent(t *testing.T) {
	tree := parseJS(t, "import { a } from 'lib';\n")
	edits, err := Execute(tree, Operation{Op: RemoveImport, Source: "lib", Specifiers: []string{"z"}}, 0, config.FormattingConfig{})
	require.NoError(t, err)
	assert.Empty(t, edits)
}
