package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/config"
)

func TestRenameSymbol_CSS_RenamesClassSelectorAndItsUses(t *testing.T) {
	tree := parseCSS(t, ".card { color: red; }\n.card:hover { color: blue; }\n")
	out, err := applyOp(t, tree, Operation{Op: RenameSymbol, From: "card", To: "panel"})
	require.NoError(t, err)
	assert.Equal(t, ".panel { color: red; }\n.panel:hover { color: blue; }\n", out)
}

func TestRenameSymbol_CSS_RenamesPropertyName(t *testing.T) {
	tree := parseCSS(t, "a { color: red; }\n")
	out, err := applyOp(t, tree, Operation{Op: RenameSymbol, From: "color", To: "background-color"})
	require.NoError(t, err)
	assert.Equal(t, "a { background-color: red; }\n", out)
}

func cssInvalidParamsCases() []Operation {
	return []Operation{
		{Op: AddImport, Source: "./x"},
		{Op: RemoveImport, Source: "./x"},
		{Op: UpdateImportPaths, OldPath: "./x", NewPath: "./y"},
		{Op: AddParameter, FunctionName: "f", ParamName: "x"},
		{Op: RemoveParameter, FunctionName: "f", ParamName: "x"},
		{Op: MakeAsync, FunctionName: "f"},
		{Op: WrapInBlock, StartLine: 1, EndLine: 1, WrapKind: "if", Condition: "x"},
		{Op: ExtractToVariable, Expression: "1 + 1", VariableName: "v"},
	}
}

func TestEachNonRenameOperation_HasNoCSSEquivalent(t *testing.T) {
	tree := parseCSS(t, "a { color: red; }\n")
	for _, op := range cssInvalidParamsCases() {
		_, err := Execute(tree, op, 0, config.FormattingConfig{})
		require.Error(t, err, op.Op)
		opErr, ok := err.(*Error)
		require.True(t, ok, op.Op)
		assert.Equal(t, InvalidParams, opErr.Code, op.Op)
	}
}
