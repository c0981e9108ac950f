package langdetect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPath_ResolvesByExtension(t *testing.T) {
	cases := map[string]string{
		"a.ts":   "typescript",
		"a.tsx":  "tsx",
		"a.js":   "javascript",
		"a.mjs":  "javascript",
		"a.cjs":  "javascript",
		"a.jsx":  "jsx",
		"a.css":  "css",
		"A.TS":   "typescript",
	}
	for path, want := range cases {
		got, ok := ForPath(path)
		require.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}
}

func TestForPath_UnreadableUnknownExtensionIsFalse(t *testing.T) {
	_, ok := ForPath(filepath.Join(t.TempDir(), "does-not-exist.xyz"))
	assert.False(t, ok)
}

func TestForPath_FallsBackToContentForAmbiguousExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "component")
	require.NoError(t, os.WriteFile(path, []byte("const a: number = 1;\nexport default a;\n"), 0o644))

	_, ok := ForPath(path)
	// enry's content classifier may or may not resolve a no-extension
	// file to one of the five supported tags; either outcome is a valid
	// "inconclusive extension, fall through to content" path, so this
	// only exercises the fallback without asserting its verdict.
	_ = ok
}

func TestForContent_MapsEnryLanguageNameToWireTag(t *testing.T) {
	got, ok := ForContent("a.css", []byte("a { color: red; }\n"))
	require.True(t, ok)
	assert.Equal(t, "css", got)
}
