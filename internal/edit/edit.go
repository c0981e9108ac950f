// Package edit implements the text-edit model: byte-range replacements
// against an immutable original source, and the conflict-free, ordered
// collection of them that the orchestrator applies in one pass.
package edit

import (
	"fmt"
	"sort"
)

// TextEdit replaces the half-open byte range [Start, End) of the
// original source with Replacement. Start == End is an insertion.
type TextEdit struct {
	Start       int
	End         int
	Replacement string

	// Label identifies the edit for diagnostics, e.g. "rename_symbol".
	Label string

	// Priority breaks ties between insertions at the same offset;
	// higher priority is applied first and so lands closest to the
	// original byte at that offset, with lower-priority text to its left.
	Priority int

	// OpIndex is the 0-based index of the request-level operation that
	// produced this edit, carried through for error reporting.
	OpIndex int
}

// NewTextEdit constructs a TextEdit, panicking if the byte range is
// invalid. Callers (executors) always derive start/end from a CST node
// span or a validated line/column computation, so an invalid range here
// indicates an executor bug, not bad input.
func NewTextEdit(start, end int, replacement, label string, priority, opIndex int) TextEdit {
	if start < 0 || start > end {
		panic(fmt.Sprintf("edit: invalid range [%d, %d)", start, end))
	}
	return TextEdit{
		Start:       start,
		End:         end,
		Replacement: replacement,
		Label:       label,
		Priority:    priority,
		OpIndex:     opIndex,
	}
}

// IsInsertion reports whether this edit inserts at a point rather than
// replacing a span.
func (e TextEdit) IsInsertion() bool {
	return e.Start == e.End
}

// ConflictError reports that two edits in the same EditSet covered
// overlapping source ranges. It carries both operations' indexes so the
// orchestrator can surface an EDIT_CONFLICT naming both offenders.
type ConflictError struct {
	AIndex int
	BIndex int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("edit: operations %d and %d produced conflicting edits", e.AIndex, e.BIndex)
}

// EditSet is an ordered, conflict-free collection of TextEdits, all
// expressed against the same original source.
type EditSet struct {
	edits []TextEdit
}

// FromEdits sorts edits by (Start, End, Priority) ascending, checks for
// conflicts, and returns the resulting EditSet. Two non-insertion edits
// conflict if their ranges overlap; any number of insertions at the same
// offset are allowed.
func FromEdits(edits []TextEdit) (*EditSet, error) {
	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Priority < b.Priority
	})

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if overlaps(prev, cur) {
			return nil, &ConflictError{AIndex: prev.OpIndex, BIndex: cur.OpIndex}
		}
	}

	return &EditSet{edits: sorted}, nil
}

// overlaps reports whether two edits, at least one of which is a
// replacement, cover intersecting byte ranges. Two insertions at the
// same offset never overlap by this definition.
func overlaps(a, b TextEdit) bool {
	if a.IsInsertion() && b.IsInsertion() {
		return false
	}
	return a.Start < b.End && b.Start < a.End
}

// Edits returns the edits in ascending (Start, End, Priority) order, the
// order FromEdits established.
func (s *EditSet) Edits() []TextEdit {
	return s.edits
}

// Len reports how many edits the set holds.
func (s *EditSet) Len() int {
	return len(s.edits)
}

// Apply produces the candidate output by replaying edits over source in
// descending (Start, End, Priority) order, so offsets computed against
// the original source stay valid for every edit still to apply — any
// independent edit set therefore commutes regardless of application
// order, as long as that order respects non-overlap.
func (s *EditSet) Apply(source []byte) string {
	out := string(source)
	for i := len(s.edits) - 1; i >= 0; i-- {
		e := s.edits[i]
		out = out[:e.Start] + e.Replacement + out[e.End:]
	}
	return out
}
