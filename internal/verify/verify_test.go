package verify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_SuccessfulCommandReportsPassed(t *testing.T) {
	result := Run(context.Background(), Command{Tool: "true", Bin: "true"})
	assert.True(t, result.Passed)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "true", result.Tool)
}

func TestRun_FailingCommandReportsExitCode(t *testing.T) {
	result := Run(context.Background(), Command{Tool: "false", Bin: "false"})
	assert.False(t, result.Passed)
	assert.NotEqual(t, 0, result.ExitCode)
}

func TestRun_MissingBinaryIsAFailedResultNotAnError(t *testing.T) {
	result := Run(context.Background(), Command{Tool: "nope", Bin: "this-binary-does-not-exist-anywhere"})
	assert.False(t, result.Passed)
	assert.Equal(t, -1, result.ExitCode)
}

func TestTypeScriptCommand_BuildsNoEmitInvocation(t *testing.T) {
	cmd := TypeScriptCommand("/tmp/project")
	assert.Equal(t, "tsc", cmd.Tool)
	assert.Equal(t, "tsc", cmd.Bin)
	assert.Equal(t, []string{"--noEmit", "--pretty", "false"}, cmd.Args)
	assert.Equal(t, "/tmp/project", cmd.Dir)
}
