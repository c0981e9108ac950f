package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/engine"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/langdetect"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/logger"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/ops"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/protocol"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/ui"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/verify"
)

var (
	opsPath      string
	languageFlag string
	verifyFlag   bool
)

var transformCmd = &cobra.Command{
	Use:   "transform <file>",
	Short: "Apply a list of operations to one source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransform,
}

func init() {
	transformCmd.Flags().StringVar(&opsPath, "ops", "", "path to a JSON file containing the operations array (required)")
	transformCmd.Flags().StringVar(&languageFlag, "language", "", "wire language tag; detected from the file extension when omitted")
	transformCmd.Flags().BoolVar(&verifyFlag, "verify", false, "after a successful non-dry-run apply, also run tsc --noEmit over the file's directory as an extra confidence check")
	_ = transformCmd.MarkFlagRequired("ops")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	app := appFromContext(cmd.Context())
	path := args[0]
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	outputFormat, _ := cmd.Flags().GetString("output")

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	language := languageFlag
	if language == "" {
		tag, ok := langdetect.ForPath(path)
		if !ok {
			return fmt.Errorf("could not detect a supported language for %s; pass --language", path)
		}
		language = tag
	}

	operations, err := loadOperations(opsPath)
	if err != nil {
		return err
	}

	eng := engine.New(app.Engine)
	var resp protocol.FileResponse
	run := func() error {
		resp = eng.ProcessFile(cmd.Context(), protocol.FileRequest{
			Content:    string(content),
			Language:   language,
			Operations: operations,
			DryRun:     dryRun,
		})
		return nil
	}

	if outputFormat != "json" && logger.IsInteractive() {
		if err := ui.RunSpinner(cmd.Context(), fmt.Sprintf("transforming %s", path), run); err != nil {
			return err
		}
	} else {
		_ = run()
	}

	if err := emitFileResponse(app, path, resp, outputFormat, dryRun); err != nil {
		return err
	}

	if verifyFlag && !dryRun && !resp.Error && (language == "typescript" || language == "tsx") {
		result := verify.Run(cmd.Context(), verify.TypeScriptCommand(filepath.Dir(path)))
		reportVerifyResult(app, path, result)
		if !result.Passed {
			return fmt.Errorf("transform: %s applied but failed verification (%s)", path, result.Tool)
		}
	}

	return nil
}

func reportVerifyResult(app *AppConfig, path string, result verify.Result) {
	if result.Passed {
		app.Logger.Logf("%s: %s passed\n", path, result.Tool)
		return
	}
	app.Logger.Logf("%s: %s failed (exit %d)\n", path, result.Tool, result.ExitCode)
	if result.Output != "" {
		app.Logger.Log(result.Output)
	}
}

func loadOperations(path string) ([]ops.Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading operations file %s: %w", path, err)
	}
	var operations []ops.Operation
	if err := json.Unmarshal(data, &operations); err != nil {
		return nil, fmt.Errorf("parsing operations file %s: %w", path, err)
	}
	return operations, nil
}

func emitFileResponse(app *AppConfig, path string, resp protocol.FileResponse, format string, dryRun bool) error {
	if format == "json" {
		data, err := protocol.Encode(resp)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}

	if resp.Error {
		logger.Failure(app.Logger, path, resp.OperationErrors)
		return fmt.Errorf("transform: %s failed", path)
	}

	if format != "json" {
		logger.Result(app.Logger, path, resp.Changes)
	}

	if !dryRun && resp.Content != nil {
		if err := os.WriteFile(path, []byte(*resp.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
