// Package verify runs an external type-checker after a transform has
// applied, as an optional confidence check layered on top of the
// engine's own re-parse validation gate. It bundles no checker of its
// own: Run just shells out to whatever binary the caller names, captures
// its output, and reports pass/fail — the same shape a linter or test
// runner invocation takes, without the parser/lint-output-parsing layer
// those need.
package verify

import (
	"context"
	"os/exec"
	"strings"
)

// Command describes one external verification step.
type Command struct {
	Tool string   // human-readable name, e.g. "tsc"
	Bin  string   // binary to execute
	Args []string // arguments, e.g. ["--noEmit", "--pretty", "false"]
	Dir  string   // working directory the command runs from
}

// Result is the outcome of running one Command.
type Result struct {
	Tool     string
	Passed   bool
	ExitCode int
	Output   string
}

// Run executes cmd and reports whether it exited cleanly. A missing
// binary or non-zero exit is reported as a failed Result rather than a
// Go error, since verification is always optional and its failure
// should never be confused with a pipeline-level failure by its caller.
func Run(ctx context.Context, cmd Command) Result {
	c := exec.CommandContext(ctx, cmd.Bin, cmd.Args...)
	c.Dir = cmd.Dir

	out, err := c.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return Result{
		Tool:     cmd.Tool,
		Passed:   err == nil,
		ExitCode: exitCode,
		Output:   strings.TrimSpace(string(out)),
	}
}

// TypeScriptCommand builds the tsc --noEmit command used to type-check a
// transformed TypeScript/TSX file's project without emitting output.
func TypeScriptCommand(dir string) Command {
	return Command{
		Tool: "tsc",
		Bin:  "tsc",
		Args: []string{"--noEmit", "--pretty", "false"},
		Dir:  dir,
	}
}
