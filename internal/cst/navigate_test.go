package cst

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestAncestor_FindsEnclosingKind(t *testing.T) {
	source := []byte("function f() {\n  a();\n}\n")
	tree, err := Parse(context.Background(), source, "javascript")
	require.NoError(t, err)
	defer tree.Close()

	fn := tree.Root().NamedChild(0)
	body := fn.ChildByFieldName("body")
	call := body.NamedChild(0)

	got := NearestAncestor(call, "statement_block", "program")
	require.NotNil(t, got)
	assert.Equal(t, body.StartByte(), got.StartByte())
	assert.Equal(t, body.EndByte(), got.EndByte())
}

func TestNearestAncestor_ReturnsNilWhenNotFound(t *testing.T) {
	source := []byte("const a = 1;\n")
	tree, err := Parse(context.Background(), source, "javascript")
	require.NoError(t, err)
	defer tree.Close()

	decl := tree.Root().NamedChild(0)
	assert.Nil(t, NearestAncestor(decl, "switch_case"))
}

func TestEnclosingStatement_ReturnsDirectBlockMember(t *testing.T) {
	source := []byte("function f() {\n  use(a.b);\n}\n")
	tree, err := Parse(context.Background(), source, "javascript")
	require.NoError(t, err)
	defer tree.Close()

	fn := tree.Root().NamedChild(0)
	body := fn.ChildByFieldName("body")
	stmt := body.NamedChild(0)
	call := stmt.NamedChild(0)
	args := call.ChildByFieldName("arguments")
	member := args.NamedChild(0)

	got := EnclosingStatement(member, "statement_block", "program")
	assert.Equal(t, stmt.StartByte(), got.StartByte())
	assert.Equal(t, stmt.EndByte(), got.EndByte())
}

func TestLineStartAndLineEnd(t *testing.T) {
	source := []byte("aaa\nbb\ncccc\n")
	assert.Equal(t, 0, LineStart(source, 1))
	assert.Equal(t, 4, LineStart(source, 2))
	assert.Equal(t, 7, LineStart(source, 3))

	assert.Equal(t, 3, LineEnd(source, 1))
	assert.Equal(t, 6, LineEnd(source, 2))
	assert.Equal(t, 11, LineEnd(source, 3))
}

func TestLineColumn(t *testing.T) {
	source := []byte("ab\ncd\n")
	line, col := LineColumn(source, 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)
}

func TestLeadingWhitespace(t *testing.T) {
	source := []byte("function f() {\n  doThing();\n}\n")
	got := LeadingWhitespace(source, LineStart(source, 2))
	assert.Equal(t, "  ", got)
}

func TestNamedChildrenAndChildren_DifferOnAnonymousTokens(t *testing.T) {
	source := []byte("function f(a, b) {}\n")
	tree, err := Parse(context.Background(), source, "javascript")
	require.NoError(t, err)
	defer tree.Close()

	fn := tree.Root().NamedChild(0)
	params := fn.ChildByFieldName("parameters")
	named := NamedChildren(params)
	all := Children(params)
	assert.Len(t, named, 2)
	assert.Greater(t, len(all), len(named))
}
