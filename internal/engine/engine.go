// Package engine implements the end-to-end transformation pipeline:
// parse, resolve and compute edits per operation, compose them into a
// conflict-free set, apply, re-parse to verify, and report. It is the
// only package that wires internal/cst, internal/ops, internal/edit,
// and internal/validate together into the two entry points
// internal/protocol describes.
package engine

import (
	"context"
	"fmt"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/config"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/ops"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/protocol"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/validate"
)

// Engine holds the request-independent state the pipeline needs: its
// configuration, which carries the formatting defaults new code falls
// back to when a source file gives no signal of its own and the
// per-language enable map ProcessFile checks first.
type Engine struct {
	cfg *config.EngineConfig
}

// New constructs an Engine. A nil cfg falls back to config.DefaultEngineConfig().
func New(cfg *config.EngineConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	return &Engine{cfg: cfg}
}

// ProcessFile runs the six-step pipeline against one request: parse,
// compute, compose, apply, validate, report.
func (e *Engine) ProcessFile(ctx context.Context, req protocol.FileRequest) protocol.FileResponse {
	if !e.cfg.LanguageEnabled(req.Language) {
		return errorResponse(fmt.Sprintf("language %q is not enabled", req.Language), []protocol.OpError{{
			OperationIndex: -1,
			Code:           ops.UnsupportedLanguage,
			Message:        fmt.Sprintf("language %q is not enabled", req.Language),
		}})
	}

	tree, err := cst.Parse(ctx, []byte(req.Content), req.Language)
	if err != nil {
		return errorResponse(err.Error(), []protocol.OpError{{
			OperationIndex: -1,
			Code:           ops.UnsupportedLanguage,
			Message:        err.Error(),
		}})
	}
	defer tree.Close()

	if tree.HasErrors() {
		return errorResponse("source contains parse errors", []protocol.OpError{{
			OperationIndex: -1,
			Code:           ops.SourceHasErrors,
			Message:        "input already contains parse-error nodes",
		}})
	}

	var allEdits []edit.TextEdit
	for i, op := range req.Operations {
		produced, opErr := ops.Execute(tree, op, i, e.cfg.Formatting)
		if opErr != nil {
			return opErrorResponse(opErr)
		}
		allEdits = append(allEdits, produced...)
	}

	if len(allEdits) == 0 {
		empty := req.Content
		resp := protocol.FileResponse{
			Content: strPtr(empty, req.DryRun),
			Status:  previewOrApplied(req.DryRun),
		}
		if req.DryRun {
			zero := 0
			resp.EditCount = &zero
		}
		return resp
	}

	set, err := edit.FromEdits(allEdits)
	if err != nil {
		if conflict, ok := err.(*edit.ConflictError); ok {
			return protocol.FileResponse{
				Error: true,
				OperationErrors: []protocol.OpError{{
					OperationIndex: conflict.AIndex,
					Code:           ops.EditConflict,
					Message:        conflictMessage(conflict),
				}},
				Status: protocol.StatusError,
			}
		}
		return errorResponse(err.Error(), nil)
	}

	candidate := set.Apply([]byte(req.Content))

	result, err := validate.Candidate(ctx, []byte(candidate), req.Language)
	if err != nil {
		return errorResponse(err.Error(), nil)
	}
	defer func() {
		if result.Tree != nil {
			result.Tree.Close()
		}
	}()
	if !result.OK {
		return errorResponse("candidate output failed re-parse", []protocol.OpError{{
			OperationIndex: -1,
			Code:           ops.InvalidResult,
			Message:        fmt.Sprintf("re-parse reported error nodes: %v", result.Nodes),
		}})
	}

	changes := changesFrom(req.Content, set.Edits())

	if req.DryRun {
		count := set.Len()
		return protocol.FileResponse{
			Content:   nil,
			Changes:   changes,
			EditCount: &count,
			Status:    protocol.StatusPreview,
		}
	}

	return protocol.FileResponse{
		Content: strPtr(candidate, false),
		Changes: changes,
		Status:  protocol.StatusApplied,
	}
}

// ProcessBatch runs ProcessFile independently over every entry in req,
// preserving the order of req.Files and never letting one file's
// failure abort another's.
func (e *Engine) ProcessBatch(ctx context.Context, req protocol.BatchRequest) protocol.BatchResponse {
	var (
		results    []protocol.BatchFileResult
		errs       []protocol.BatchFileError
		totalEdits int
	)

	for _, f := range req.Files {
		resp := e.ProcessFile(ctx, protocol.FileRequest{
			Content:    f.Content,
			Language:   f.Language,
			Operations: f.Operations,
			DryRun:     req.DryRun,
		})

		if resp.Error || resp.Status == protocol.StatusError {
			code := "INVALID_RESULT"
			msg := "processing failed"
			if len(resp.OperationErrors) > 0 {
				code = string(resp.OperationErrors[0].Code)
				msg = resp.OperationErrors[0].Message
			}
			errs = append(errs, protocol.BatchFileError{Path: f.Path, Error: msg, Code: code})
			continue
		}

		edits := len(resp.Changes)
		totalEdits += edits
		results = append(results, protocol.BatchFileResult{
			Path:         f.Path,
			Content:      resp.Content,
			Changes:      resp.Changes,
			Warnings:     resp.Warnings,
			EditsApplied: edits,
		})
	}

	status := batchStatus(req.DryRun, len(results), len(errs))
	return protocol.BatchResponse{
		Results:    results,
		Errors:     errs,
		TotalEdits: totalEdits,
		Status:     status,
	}
}

func batchStatus(dryRun bool, succeeded, failed int) protocol.Status {
	switch {
	case succeeded == 0 && failed > 0:
		return protocol.StatusError
	case succeeded > 0 && failed > 0:
		return protocol.StatusPartial
	case dryRun:
		return protocol.StatusPreview
	default:
		return protocol.StatusApplied
	}
}

func previewOrApplied(dryRun bool) protocol.Status {
	if dryRun {
		return protocol.StatusPreview
	}
	return protocol.StatusApplied
}

func strPtr(s string, dryRun bool) *string {
	if dryRun {
		return nil
	}
	return &s
}

func errorResponse(msg string, opErrs []protocol.OpError) protocol.FileResponse {
	if opErrs == nil {
		opErrs = []protocol.OpError{{OperationIndex: -1, Code: ops.InvalidParams, Message: msg}}
	}
	return protocol.FileResponse{
		Error:           true,
		Content:         nil,
		OperationErrors: opErrs,
		Status:          protocol.StatusError,
	}
}

func opErrorResponse(err error) protocol.FileResponse {
	opErr, ok := err.(*ops.Error)
	if !ok {
		return errorResponse(err.Error(), nil)
	}
	return protocol.FileResponse{
		Error: true,
		OperationErrors: []protocol.OpError{{
			OperationIndex: opErr.OpIndex,
			Code:           opErr.Code,
			Message:        opErr.Message,
		}},
		Status: protocol.StatusError,
	}
}

func conflictMessage(c *edit.ConflictError) string {
	return fmt.Sprintf("operations %d and %d produced overlapping edits", c.AIndex, c.BIndex)
}

func changesFrom(source string, edits []edit.TextEdit) []protocol.Change {
	out := make([]protocol.Change, 0, len(edits))
	for _, e := range edits {
		line, col := cst.LineColumn([]byte(source), e.Start)
		out = append(out, protocol.Change{
			Kind:    e.Label,
			Line:    line,
			Column:  col,
			Summary: summarize(e),
		})
	}
	return out
}

func summarize(e edit.TextEdit) string {
	if e.Start == e.End {
		return fmt.Sprintf("%s: inserted %d bytes", e.Label, len(e.Replacement))
	}
	return fmt.Sprintf("%s: replaced %d bytes with %d", e.Label, e.End-e.Start, len(e.Replacement))
}
