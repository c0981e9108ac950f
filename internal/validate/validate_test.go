package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_WellFormedSourceIsOK(t *testing.T) {
	result, err := Candidate(context.Background(), []byte("const a = 1;\n"), "javascript")
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Empty(t, result.Nodes)
	require.NotNil(t, result.Tree)
	result.Tree.Close()
}

func TestCandidate_MalformedSourceIsNotOK(t *testing.T) {
	result, err := Candidate(context.Background(), []byte("function f( {\n"), "javascript")
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Nodes)
	result.Tree.Close()
}

func TestCandidate_UnsupportedLanguageIsError(t *testing.T) {
	_, err := Candidate(context.Background(), []byte("x"), "ruby")
	require.Error(t, err)
}
