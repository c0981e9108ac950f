// Package ops implements the closed set of operation executors: given
// a parsed CST and one operation's parameters, each produces the
// TextEdits that realize it, or a per-operation Error from the
// taxonomy in errors.go.
package ops

import (
	"fmt"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/config"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
)

// executors maps each closed Kind to its implementation. The map has an
// entry for every Kind constant declared in operation.go; no executor is
// resolved through type assertion or reflection.
var executors = map[Kind]func(*Context, Operation) ([]edit.TextEdit, error){
	RenameSymbol:      execRenameSymbol,
	AddImport:         execAddImport,
	RemoveImport:      execRemoveImport,
	UpdateImportPaths: execUpdateImportPaths,
	AddParameter:      execAddParameter,
	RemoveParameter:   execRemoveParameter,
	MakeAsync:         execMakeAsync,
	WrapInBlock:       execWrapInBlock,
	ExtractToVariable: execExtractToVariable,
}

// Execute dispatches one operation against tree, tagging every edit
// and error it produces with opIndex.
func Execute(tree *cst.CST, op Operation, opIndex int, defaults config.FormattingConfig) ([]edit.TextEdit, error) {
	fn, ok := executors[op.Op]
	if !ok {
		return nil, NewError(opIndex, InvalidParams, fmt.Sprintf("unknown operation %q", op.Op))
	}
	c := &Context{Tree: tree, OpIndex: opIndex, Defaults: defaults}
	return fn(c, op)
}
