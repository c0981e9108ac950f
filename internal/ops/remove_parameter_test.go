package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/config"
)

func TestRemoveParameter_RemovesMiddleParameter(t *testing.T) {
	tree := parseJS(t, "function f(a, b, c) { return a + b + c; }\n")
	out, err := applyOp(t, tree, Operation{Op: RemoveParameter, FunctionName: "f", ParamName: "b"})
	require.NoError(t, err)
	assert.Equal(t, "function f(a, c) { return a + b + c; }\n", out)
}

func TestRemoveParameter_RemovesFirstParameter(t *testing.T) {
	tree := parseJS(t, "function f(a, b) { return a + b; }\n")
	out, err := applyOp(t, tree, Operation{Op: RemoveParameter, FunctionName: "f", ParamName: "a"})
	require.NoError(t, err)
	assert.Equal(t, "function f( b) { return a + b; }\n", out)
}

func TestRemoveParameter_RemovesLastParameter(t *testing.T) {
	tree := parseJS(t, "function f(a, b) { return a + b; }\n")
	out, err := applyOp(t, tree, Operation{Op: RemoveParameter, FunctionName: "f", ParamName: "b"})
	require.NoError(t, err)
	assert.Equal(t, "function f(a) { return a + b; }\n", out)
}

func TestRemoveParameter_OnlyParameter(t *testing.T) {
	tree := parseJS(t, "function f(a) { return a; }\n")
	out, err := applyOp(t, tree, Operation{Op: RemoveParameter, FunctionName: "f", ParamName: "a"})
	require.NoError(t, err)
	assert.Equal(t, "function f() { return a; }\n", out)
}

func TestRemoveParameter_ParamNotFound(t *testing.T) {
	tree := parseJS(t, "function f(a) {}\n")
	_, err := Execute(tree, Operation{Op: RemoveParameter, FunctionName: "f", ParamName: "z"}, 0, config.FormattingConfig{})
	require.Error(t, err)
	opErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, SymbolNotFound, opErr.Code)
}
