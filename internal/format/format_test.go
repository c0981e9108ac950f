package format

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
)

func TestIndentUnit_FindsSmallestLeadingWhitespaceRun(t *testing.T) {
	source := []byte("a\n  b\n    c\n")
	assert.Equal(t, "  ", IndentUnit(source, 0, "\t"))
}

func TestIndentUnit_FallsBackWhenNoIndentFound(t *testing.T) {
	source := []byte("a\nb\nc\n")
	assert.Equal(t, "\t", IndentUnit(source, 0, "\t"))
}

func TestIndentAt_MatchesLineLeadingWhitespace(t *testing.T) {
	source := []byte("function f() {\n    doThing();\n}\n")
	assert.Equal(t, "    ", IndentAt(source, 16))
}

func TestNestedIndent_AppendsUnit(t *testing.T) {
	assert.Equal(t, "    ", NestedIndent("  ", "  "))
}

func TestQuoteStyleOf(t *testing.T) {
	assert.Equal(t, Single, QuoteStyleOf("'x'", Double))
	assert.Equal(t, Double, QuoteStyleOf(`"x"`, Single))
	assert.Equal(t, Double, QuoteStyleOf("", Double))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'abc'", Quote("abc", Single))
	assert.Equal(t, `"abc"`, Quote("abc", Double))
}

func TestNearestStringLiteral_WalksPrecedingSiblings(t *testing.T) {
	source := []byte("foo('a.js', x);\n")
	tree, err := cst.Parse(context.Background(), source, "javascript")
	require.NoError(t, err)
	defer tree.Close()

	stmt := tree.Root().NamedChild(0)
	call := stmt.NamedChild(0)
	args := call.ChildByFieldName("arguments")
	x := args.NamedChild(1)

	got := NearestStringLiteral(x, source, "string", 20)
	assert.Equal(t, "'a.js'", got)
}

func TestNearestStringLiteral_ReturnsEmptyWhenNoneFound(t *testing.T) {
	source := []byte("const x = 1;\n")
	tree, err := cst.Parse(context.Background(), source, "javascript")
	require.NoError(t, err)
	defer tree.Close()

	decl := tree.Root().NamedChild(0)
	assert.Equal(t, "", NearestStringLiteral(decl, source, "string", 20))
}

func TestTrailingSemicolon(t *testing.T) {
	assert.True(t, TrailingSemicolon("a();\n  b();\n"))
	assert.False(t, TrailingSemicolon("a()\n  b()\n"))
	assert.False(t, TrailingSemicolon("\n  \n"))
}

func TestEndsWithNewline(t *testing.T) {
	assert.True(t, EndsWithNewline([]byte("a\n")))
	assert.False(t, EndsWithNewline([]byte("a")))
	assert.False(t, EndsWithNewline(nil))
}
