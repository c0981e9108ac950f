// Package logger is the CLI's output sink: a plain Logger for piped/JSON
// output and a UILogger that routes the same calls through an active
// spinner while a transform or batch run is in flight.
package logger

import (
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/protocol"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/report"
)

// Logger is the sink every cmd/ command writes its progress and results
// through, so that output behaves the same whether a spinner is active
// or not.
type Logger interface {
	Logf(format string, args ...interface{})
	Log(msg string)
}

// Result logs one file's applied changes through l, in the same shape
// every non-JSON run reports: the file's path, then one indented line
// per change, then a summary line. transform and batch share this so a
// single file's report reads identically whether it ran alone or as
// part of a manifest.
func Result(l Logger, path string, changes []protocol.Change) {
	l.Logf("%s:\n", path)
	for _, line := range report.Lines(changes) {
		l.Logf("  %s\n", line)
	}
	l.Log("  " + report.Summary(changes))
}

// Failure logs the operation errors that aborted one file's transform
// run, one line per error, prefixed with the file's path so a batch
// run's errors stay attributable when interleaved with other files'
// output.
func Failure(l Logger, path string, opErrs []protocol.OpError) {
	for _, e := range opErrs {
		l.Logf("%s: error: %s: %s\n", path, e.Code, e.Message)
	}
}

// Spinner displays progress for one in-flight file or batch run.
// Implementations must be safe for single-threaded Update/Stop/Fail usage.
type Spinner interface {
	// Update changes the spinner text while running.
	Update(text string)
	// Stop stops the spinner and prints a success indicator.
	Stop()
	// Fail stops the spinner and prints a failure indicator.
	Fail()
}

// noOpSpinner is used when output is non-interactive (e.g., tests, piped
// output, or --output json). It performs no rendering to keep output stable.
type noOpSpinner struct{}

func (n *noOpSpinner) Update(text string) {}
func (n *noOpSpinner) Stop()              {}
func (n *noOpSpinner) Fail()              {}
