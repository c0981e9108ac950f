package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/config"
)

func TestWrapInBlock_If_WrapsSingleStatement(t *testing.T) {
	source := "function f() {\n  doThing();\n}\n"
	tree := parseJS(t, source)
	out, err := applyOp(t, tree, Operation{
		Op:        WrapInBlock,
		StartLine: 2,
		EndLine:   2,
		WrapKind:  "if",
		Condition: "ready",
	})
	require.NoError(t, err)
	assert.Equal(t, "function f() {\n  if (ready) {\n  doThing();\n  }\n}\n", out)
}

func TestWrapInBlock_ForOf_WrapsMultipleStatements(t *testing.T) {
	source := "function f() {\n  a();\n  b();\n}\n"
	tree := parseJS(t, source)
	out, err := applyOp(t, tree, Operation{
		Op:        WrapInBlock,
		StartLine: 2,
		EndLine:   3,
		WrapKind:  "for_of",
		Item:      "x",
		Iterable:  "xs",
	})
	require.NoError(t, err)
	assert.Equal(t, "function f() {\n  for (const x of xs) {\n  a();\n  b();\n  }\n}\n", out)
}

func TestWrapInBlock_Block_WrapsWithoutAControllingStatement(t *testing.T) {
	source := "function f() {\n  const x = 1;\n  use(x);\n}\n"
	tree := parseJS(t, source)
	out, err := applyOp(t, tree, Operation{
		Op:        WrapInBlock,
		StartLine: 2,
		EndLine:   3,
		WrapKind:  "block",
	})
	require.NoError(t, err)
	assert.Equal(t, "function f() {\n  {\n  const x = 1;\n  use(x);\n  }\n}\n", out)
}

func TestWrapInBlock_TwoStatementsOnOneLineAreAWholeSpan(t *testing.T) {
	source := "function f() {\n  a(); b();\n}\n"
	tree := parseJS(t, source)
	_, err := Execute(tree, Operation{
		Op:        WrapInBlock,
		StartLine: 2,
		EndLine:   2,
		WrapKind:  "if",
		Condition: "x",
	}, 0, config.FormattingConfig{})
	// a(); b(); on one line is a whole number of statements at that line,
	// so selecting the line is accepted.
	require.NoError(t, err)
}

func TestWrapInBlock_MissingConditionForIf(t *testing.T) {
	source := "function f() {\n  a();\n}\n"
	tree := parseJS(t, source)
	_, err := Execute(tree, Operation{
		Op:        WrapInBlock,
		StartLine: 2,
		EndLine:   2,
		WrapKind:  "if",
	}, 0, config.FormattingConfig{})
	require.Error(t, err)
	opErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidParams, opErr.Code)
}

func TestWrapInBlock_UnknownWrapKind(t *testing.T) {
	source := "function f() {\n  a();\n}\n"
	tree := parseJS(t, source)
	_, err := Execute(tree, Operation{
		Op:        WrapInBlock,
		StartLine: 2,
		EndLine:   2,
		WrapKind:  "switch",
	}, 0, config.FormattingConfig{})
	require.Error(t, err)
	opErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidParams, opErr.Code)
}
