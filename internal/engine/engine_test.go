package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/config"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/ops"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/protocol"
)

func TestProcessFile_AppliesMultipleOperationsInSequence(t *testing.T) {
	e := New(nil)
	resp := e.ProcessFile(context.Background(), protocol.FileRequest{
		Content:  "function greet(name) {\n  return name;\n}\n",
		Language: "javascript",
		Operations: []ops.Operation{
			{Op: ops.RenameSymbol, From: "name", To: "who"},
			{Op: ops.MakeAsync, FunctionName: "greet"},
		},
	})
	require.False(t, resp.Error)
	require.NotNil(t, resp.Content)
	assert.Equal(t, "async function greet(who) {\n  return who;\n}\n", *resp.Content)
	assert.Equal(t, protocol.StatusApplied, resp.Status)
	assert.Len(t, resp.Changes, 3)
}

func TestProcessFile_DryRunReportsChangesWithoutContent(t *testing.T) {
	e := New(nil)
	resp := e.ProcessFile(context.Background(), protocol.FileRequest{
		Content:    "const a = 1;\n",
		Language:   "javascript",
		Operations: []ops.Operation{{Op: ops.RenameSymbol, From: "a", To: "b"}},
		DryRun:     true,
	})
	require.False(t, resp.Error)
	assert.Nil(t, resp.Content)
	assert.Equal(t, protocol.StatusPreview, resp.Status)
	require.NotNil(t, resp.EditCount)
	assert.Equal(t, 1, *resp.EditCount)
}

func TestProcessFile_DryRunWithNoOpEditsReportsZeroEditCount(t *testing.T) {
	e := New(nil)
	resp := e.ProcessFile(context.Background(), protocol.FileRequest{
		Content:    "async function load() { return 1; }\n",
		Language:   "javascript",
		Operations: []ops.Operation{{Op: ops.MakeAsync, FunctionName: "load"}},
		DryRun:     true,
	})
	require.False(t, resp.Error)
	assert.Nil(t, resp.Content)
	assert.Equal(t, protocol.StatusPreview, resp.Status)
	require.NotNil(t, resp.EditCount)
	assert.Equal(t, 0, *resp.EditCount)
}

func TestProcessFile_NoOperationsReturnsContentUnchanged(t *testing.T) {
	e := New(nil)
	resp := e.ProcessFile(context.Background(), protocol.FileRequest{
		Content:  "const a = 1;\n",
		Language: "javascript",
	})
	require.False(t, resp.Error)
	require.NotNil(t, resp.Content)
	assert.Equal(t, "const a = 1;\n", *resp.Content)
	assert.Equal(t, protocol.StatusApplied, resp.Status)
}

func TestProcessFile_SourceWithParseErrorsIsRejected(t *testing.T) {
	e := New(nil)
	resp := e.ProcessFile(context.Background(), protocol.FileRequest{
		Content:    "function f( {\n",
		Language:   "javascript",
		Operations: []ops.Operation{{Op: ops.RenameSymbol, From: "f", To: "g"}},
	})
	require.True(t, resp.Error)
	require.Len(t, resp.OperationErrors, 1)
	assert.Equal(t, ops.SourceHasErrors, resp.OperationErrors[0].Code)
	assert.Equal(t, protocol.StatusError, resp.Status)
}

func TestProcessFile_OperationErrorIsReportedWithItsIndex(t *testing.T) {
	e := New(nil)
	resp := e.ProcessFile(context.Background(), protocol.FileRequest{
		Content: "const a = 1;\n",
		Language: "javascript",
		Operations: []ops.Operation{
			{Op: ops.RenameSymbol, From: "a", To: "b"},
			{Op: ops.RenameSymbol, From: "missing", To: "x"},
		},
	})
	require.True(t, resp.Error)
	require.Len(t, resp.OperationErrors, 1)
	assert.Equal(t, 1, resp.OperationErrors[0].OperationIndex)
	assert.Equal(t, ops.SymbolNotFound, resp.OperationErrors[0].Code)
}

func TestProcessFile_ConflictingEditsAreRejected(t *testing.T) {
	e := New(nil)
	resp := e.ProcessFile(context.Background(), protocol.FileRequest{
		Content: "function f(a) { return a; }\n",
		Language: "javascript",
		Operations: []ops.Operation{
			{Op: ops.RenameSymbol, From: "a", To: "x"},
			{Op: ops.RenameSymbol, From: "a", To: "y"},
		},
	})
	require.True(t, resp.Error)
	assert.Equal(t, protocol.StatusError, resp.Status)
	require.Len(t, resp.OperationErrors, 1)
	assert.Equal(t, ops.EditConflict, resp.OperationErrors[0].Code)
}

func TestProcessFile_DisabledLanguageIsUnsupported(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.Languages["javascript"] = config.LanguageConfig{Enabled: false}
	e := New(cfg)
	resp := e.ProcessFile(context.Background(), protocol.FileRequest{
		Content:  "const a = 1;\n",
		Language: "javascript",
	})
	require.True(t, resp.Error)
	require.Len(t, resp.OperationErrors, 1)
	assert.Equal(t, ops.UnsupportedLanguage, resp.OperationErrors[0].Code)
}

func TestProcessFile_UnknownLanguageTagIsUnsupported(t *testing.T) {
	e := New(nil)
	resp := e.ProcessFile(context.Background(), protocol.FileRequest{
		Content:  "x",
		Language: "ruby",
	})
	require.True(t, resp.Error)
	require.Len(t, resp.OperationErrors, 1)
	assert.Equal(t, ops.UnsupportedLanguage, resp.OperationErrors[0].Code)
}

func TestProcessBatch_AllSucceedIsApplied(t *testing.T) {
	e := New(nil)
	resp := e.ProcessBatch(context.Background(), protocol.BatchRequest{
		Files: []protocol.BatchFile{
			{Path: "a.ts", Content: "const a = 1;\n", Language: "typescript", Operations: []ops.Operation{{Op: ops.RenameSymbol, From: "a", To: "b"}}},
			{Path: "b.ts", Content: "const c = 1;\n", Language: "typescript", Operations: []ops.Operation{{Op: ops.RenameSymbol, From: "c", To: "d"}}},
		},
	})
	assert.Equal(t, protocol.StatusApplied, resp.Status)
	assert.Len(t, resp.Results, 2)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, 2, resp.TotalEdits)
}

func TestProcessBatch_MixedOutcomesIsPartial(t *testing.T) {
	e := New(nil)
	resp := e.ProcessBatch(context.Background(), protocol.BatchRequest{
		Files: []protocol.BatchFile{
			{Path: "ok.ts", Content: "const a = 1;\n", Language: "typescript", Operations: []ops.Operation{{Op: ops.RenameSymbol, From: "a", To: "b"}}},
			{Path: "bad.ts", Content: "const a = 1;\n", Language: "typescript", Operations: []ops.Operation{{Op: ops.RenameSymbol, From: "missing", To: "x"}}},
		},
	})
	assert.Equal(t, protocol.StatusPartial, resp.Status)
	assert.Len(t, resp.Results, 1)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "bad.ts", resp.Errors[0].Path)
}

func TestProcessBatch_AllFailIsError(t *testing.T) {
	e := New(nil)
	resp := e.ProcessBatch(context.Background(), protocol.BatchRequest{
		Files: []protocol.BatchFile{
			{Path: "bad.ts", Content: "const a = 1;\n", Language: "typescript", Operations: []ops.Operation{{Op: ops.RenameSymbol, From: "missing", To: "x"}}},
		},
	})
	assert.Equal(t, protocol.StatusError, resp.Status)
	assert.Empty(t, resp.Results)
	assert.Len(t, resp.Errors, 1)
}
