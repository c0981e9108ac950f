// Package report renders protocol.Change values into the short,
// human-readable lines a CLI prints after a transformation: one
// sentence per change, in file-order.
package report

import (
	"fmt"
	"strings"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/protocol"
)

// ChangeDescription renders one Change as "line:column kind — summary".
func ChangeDescription(c protocol.Change) string {
	return fmt.Sprintf("%d:%d %s — %s", c.Line, c.Column, c.Kind, c.Summary)
}

// Lines renders every change, in the order given, one per line.
func Lines(changes []protocol.Change) []string {
	out := make([]string, len(changes))
	for i, c := range changes {
		out[i] = ChangeDescription(c)
	}
	return out
}

// Summary renders a one-line count, e.g. "3 changes applied" or
// "no changes".
func Summary(changes []protocol.Change) string {
	if len(changes) == 0 {
		return "no changes"
	}
	if len(changes) == 1 {
		return "1 change applied"
	}
	return fmt.Sprintf("%d changes applied", len(changes))
}

// Block renders a full report: a summary line followed by every
// change description, indented.
func Block(changes []protocol.Change) string {
	var b strings.Builder
	b.WriteString(Summary(changes))
	for _, line := range Lines(changes) {
		b.WriteString("\n  ")
		b.WriteString(line)
	}
	return b.String()
}
