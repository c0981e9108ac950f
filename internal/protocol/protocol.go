// Package protocol defines the wire-level request/response shapes the
// engine exchanges with its caller: JSON in, JSON out, with no
// transport or file-I/O concerns of its own.
package protocol

import (
	"encoding/json"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/ops"
)

// Status discriminates a response's outcome.
type Status string

const (
	StatusApplied Status = "applied"
	StatusPreview Status = "preview"
	StatusPartial Status = "partial"
	StatusError   Status = "error"
)

// Change describes one user-visible effect of a successfully applied
// edit, located by the line/column its insertion or replacement starts
// at in the original source.
type Change struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Summary string `json:"summary"`
}

// OpError reports one operation's failure, keyed by its 0-based index
// in the request's operations list.
type OpError struct {
	OperationIndex int           `json:"operation_index"`
	Code           ops.ErrorCode `json:"code"`
	Message        string        `json:"message"`
}

// FileRequest is one single-file transformation request.
type FileRequest struct {
	Content    string          `json:"content"`
	Language   string          `json:"language"`
	Operations []ops.Operation `json:"operations"`
	DryRun     bool            `json:"dry_run,omitempty"`
}

// FileResponse is the result of processing one FileRequest.
type FileResponse struct {
	Error           bool      `json:"error"`
	Content         *string   `json:"content"`
	Changes         []Change  `json:"changes"`
	Warnings        []string  `json:"warnings"`
	OperationErrors []OpError `json:"operation_errors"`
	EditCount       *int      `json:"edit_count,omitempty"`
	Status          Status    `json:"status"`
}

// BatchFile is one file entry within a BatchRequest.
type BatchFile struct {
	Path       string          `json:"path"`
	Content    string          `json:"content"`
	Language   string          `json:"language"`
	Operations []ops.Operation `json:"operations"`
}

// BatchRequest processes many files independently in one call.
type BatchRequest struct {
	Files  []BatchFile `json:"files"`
	DryRun bool        `json:"dry_run,omitempty"`
}

// BatchFileResult mirrors FileResponse for one file within a batch,
// minus the per-request status field (the batch carries its own).
type BatchFileResult struct {
	Path         string   `json:"path"`
	Content      *string  `json:"content"`
	Changes      []Change `json:"changes"`
	Warnings     []string `json:"warnings"`
	EditsApplied int      `json:"edits_applied"`
}

// BatchFileError reports one file's request-level failure within a
// batch; its own operation_errors (if any) are folded into Error.
type BatchFileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
	Code  string `json:"code"`
}

// BatchResponse is the result of processing a BatchRequest.
type BatchResponse struct {
	Results    []BatchFileResult `json:"results"`
	Errors     []BatchFileError  `json:"errors"`
	TotalEdits int               `json:"total_edits"`
	Status     Status            `json:"status"`
}

// DecodeFileRequest parses a single-file request from its wire JSON.
func DecodeFileRequest(data []byte) (FileRequest, error) {
	var req FileRequest
	err := json.Unmarshal(data, &req)
	return req, err
}

// DecodeBatchRequest parses a batch request from its wire JSON.
func DecodeBatchRequest(data []byte) (BatchRequest, error) {
	var req BatchRequest
	err := json.Unmarshal(data, &req)
	return req, err
}

// Encode marshals any response value to its wire JSON form.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}
