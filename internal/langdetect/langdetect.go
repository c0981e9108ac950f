// Package langdetect maps a file path (and, when the extension is
// ambiguous, its content) to one of the engine's five wire language
// tags. It exists purely for the CLI's convenience — the engine itself
// never infers a language, it only accepts the tag a caller supplies.
package langdetect

import (
	"os"
	"strings"

	enry "github.com/go-enry/go-enry/v2"
)

// tagsByExtension resolves the unambiguous cases directly, without
// asking enry to classify content, since ".tsx"/".jsx" always settle
// the grammar choice on their own.
var tagsByExtension = map[string]string{
	".ts":  "typescript",
	".tsx": "tsx",
	".js":  "javascript",
	".mjs": "javascript",
	".cjs": "javascript",
	".jsx": "jsx",
	".css": "css",
}

// enryToTag maps enry's own language names to wire tags, for the
// fallback path where the extension alone (e.g. a file with no
// extension) does not disambiguate.
var enryToTag = map[string]string{
	"TypeScript": "typescript",
	"TSX":        "tsx",
	"JavaScript": "javascript",
	"JSX":        "jsx",
	"CSS":        "css",
}

// ForPath resolves path's wire language tag, reading its content only
// when the extension lookup is inconclusive. Returns "", false when no
// supported language matches.
func ForPath(path string) (string, bool) {
	ext := strings.ToLower(extensionOf(path))
	if tag, ok := tagsByExtension[ext]; ok {
		return tag, true
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return ForContent(path, content)
}

// ForContent resolves path+content's wire language tag via enry's
// content-based classifier, for inputs whose extension alone doesn't
// decide (e.g. content piped without a filename extension).
func ForContent(path string, content []byte) (string, bool) {
	lang := enry.GetLanguage(path, content)
	tag, ok := enryToTag[lang]
	return tag, ok
}

func extensionOf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return path[i:]
}
