package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
)

func parse(t *testing.T, source, language string) *cst.CST {
	t.Helper()
	tree, err := cst.Parse(context.Background(), []byte(source), language)
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func TestFor_ReturnsSetForEachJSAndTSFamilyMember(t *testing.T) {
	for _, lang := range []string{"javascript", "jsx", "typescript", "tsx"} {
		set, ok := For(lang)
		require.True(t, ok, lang)
		assert.NotEmpty(t, set.Imports)
		assert.NotEmpty(t, set.Functions)
		assert.NotEmpty(t, set.Identifiers)
	}
}

func TestFor_ReturnsFalseForCSS(t *testing.T) {
	_, ok := For("css")
	assert.False(t, ok)
}

func TestNodes_IdentifiersMatchesEveryIdentifierOccurrence(t *testing.T) {
	tree := parse(t, "function greet(name) {\n  return name;\n}\n", "javascript")
	set, ok := For("javascript")
	require.True(t, ok)

	nodes, err := Nodes(tree, nil, set.Identifiers)
	require.NoError(t, err)

	var names []string
	for _, n := range nodes {
		names = append(names, tree.Text(n))
	}
	assert.Contains(t, names, "greet")
	assert.Contains(t, names, "name")
}

func TestNodes_FunctionsMatchesDeclarationsAndArrows(t *testing.T) {
	tree := parse(t, "function a() {}\nconst b = () => {};\n", "javascript")
	set, ok := For("javascript")
	require.True(t, ok)

	nodes, err := Nodes(tree, nil, set.Functions)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestNodes_ScopedToSubNode(t *testing.T) {
	tree := parse(t, "function a(x) { return x; }\nfunction b(x) { return x + 1; }\n", "javascript")
	set, ok := For("javascript")
	require.True(t, ok)

	fnA := tree.Root().NamedChild(0)
	nodes, err := Nodes(tree, fnA, set.Identifiers)
	require.NoError(t, err)
	for _, n := range nodes {
		assert.GreaterOrEqual(t, n.StartByte(), fnA.StartByte())
		assert.LessOrEqual(t, n.EndByte(), fnA.EndByte())
	}
}

func TestCSSSelectorNodes_MatchesClassIDTagAndProperty(t *testing.T) {
	tree := parse(t, ".card { color: red; }\n#main { width: 1px; }\n", "css")
	nodes, err := CSSSelectorNodes(tree, nil)
	require.NoError(t, err)

	var texts []string
	for _, n := range nodes {
		texts = append(texts, tree.Text(n))
	}
	assert.Contains(t, texts, "card")
	assert.Contains(t, texts, "main")
	assert.Contains(t, texts, "color")
	assert.Contains(t, texts, "width")
}

func TestCSSDeclarations_MatchesEachPropertyValuePair(t *testing.T) {
	tree := parse(t, "a { color: red; width: 1px; }\n", "css")
	nodes, err := CSSDeclarations(tree, nil)
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}
