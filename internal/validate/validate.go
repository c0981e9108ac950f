// Package validate implements the re-parse gate: every candidate output
// the engine is about to accept is parsed again under the same
// grammar, and rejected if the result still contains a parse-error
// node. "Correct by construction" means this check, not the executors'
// own care, is the thing a caller can rely on.
package validate

import (
	"context"
	"fmt"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
)

// Result reports the outcome of re-parsing a candidate string.
type Result struct {
	OK    bool
	Tree  *cst.CST
	Nodes []string // grammar kinds of the offending ERROR/missing nodes, for diagnostics
}

// Candidate re-parses candidate under language and reports whether it
// is free of parse errors. The caller owns the returned tree's
// lifetime and must Close it once it is done inspecting Result.Tree.
func Candidate(ctx context.Context, candidate []byte, language string) (Result, error) {
	tree, err := cst.Parse(ctx, candidate, language)
	if err != nil {
		return Result{}, fmt.Errorf("validate: %w", err)
	}

	if !tree.HasErrors() {
		return Result{OK: true, Tree: tree}, nil
	}

	errNodes := tree.ErrorNodes()
	kinds := make([]string, len(errNodes))
	for i, n := range errNodes {
		kinds[i] = n.Type()
	}
	return Result{OK: false, Tree: tree, Nodes: kinds}, nil
}
