// Package format infers the style of newly generated code — indentation,
// quote style, trailing semicolons, final newline — from the
// surrounding source. These helpers never touch existing bytes; they
// only shape text that an executor is about to insert.
package format

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
)

// QuoteStyle is either Single or Double.
type QuoteStyle string

const (
	Single QuoteStyle = "'"
	Double QuoteStyle = `"`
)

// IndentUnit samples the first N indented lines of source to infer
// whether the file prefers tabs or a fixed run of spaces, returning the
// smallest non-empty leading-whitespace run found. Falls back to
// fallback when no indented line is found.
func IndentUnit(source []byte, sampleLines int, fallback string) string {
	lines := strings.Split(string(source), "\n")

	var smallest string
	sampled := 0
	for _, line := range lines {
		ws := leadingWhitespace(line)
		if ws == "" {
			continue
		}
		if smallest == "" || len(ws) < len(smallest) {
			smallest = ws
		}
		sampled++
		if sampleLines > 0 && sampled >= sampleLines {
			break
		}
	}
	if smallest == "" {
		return fallback
	}
	return smallest
}

func leadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

// IndentAt returns the leading-whitespace string of the line containing
// byte offset, i.e. the indentation an inserted sibling statement at
// that position should reuse.
func IndentAt(source []byte, offset int) string {
	return cst.LeadingWhitespace(source, offset)
}

// NestedIndent extends indent by one level, using unit as the increment
// (the file's prevailing indentation unit, per IndentUnit).
func NestedIndent(indent, unit string) string {
	return indent + unit
}

// QuoteStyleOf inspects the nearest existing same-kind string literal
// (passed in as its raw source slice, quotes included) and reports which
// quote character it uses. If sample is empty, returns fallback.
func QuoteStyleOf(sample string, fallback QuoteStyle) QuoteStyle {
	if sample == "" {
		return fallback
	}
	switch sample[0] {
	case '\'':
		return Single
	case '"':
		return Double
	default:
		return fallback
	}
}

// Quote wraps text in the given quote style.
func Quote(text string, style QuoteStyle) string {
	q := string(style)
	return q + text + q
}

// NearestStringLiteral walks backward from node through the tree
// (preceding siblings, then up to the parent's preceding siblings) to
// find the most recent node of kind stringKind, returning its raw source
// text including quotes, or "" if none is found within maxHops steps.
func NearestStringLiteral(node *sitter.Node, source []byte, stringKind string, maxHops int) string {
	hops := 0
	cur := node
	for cur != nil && hops < maxHops {
		for sib := cur.PrevSibling(); sib != nil; sib = sib.PrevSibling() {
			if sib.Type() == stringKind {
				return string(source[sib.StartByte():sib.EndByte()])
			}
			hops++
			if hops >= maxHops {
				return ""
			}
		}
		cur = cur.Parent()
		hops++
	}
	return ""
}

// TrailingSemicolon inspects the last non-blank, non-comment line of
// text (typically the content of the enclosing block up to the
// insertion point) and reports whether a new statement there should end
// with ";".
func TrailingSemicolon(blockText string) bool {
	lines := strings.Split(blockText, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		return strings.HasSuffix(line, ";")
	}
	return false
}

// EndsWithNewline reports whether source ends with a trailing newline,
// the signal new trailing inserts should preserve.
func EndsWithNewline(source []byte) bool {
	return len(source) > 0 && source[len(source)-1] == '\n'
}
