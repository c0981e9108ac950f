package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/engine"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/langdetect"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/logger"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/ops"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/protocol"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/ui"
)

// decodeOperationsRaw parses a manifest entry's operations array, which
// is carried as json.RawMessage so batchManifest's own unmarshal step
// doesn't need to know the Operation shape.
func decodeOperationsRaw(raw json.RawMessage) ([]ops.Operation, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var operations []ops.Operation
	if err := json.Unmarshal(raw, &operations); err != nil {
		return nil, err
	}
	return operations, nil
}

// batchManifest is the on-disk shape a `transform batch` invocation
// reads: a list of files, each naming its own path and operations.
// It mirrors protocol.BatchFile except that content is read from each
// path, and language may be omitted, in which case it is detected from
// the file.
type batchManifest struct {
	Files []struct {
		Path       string          `json:"path"`
		Operations json.RawMessage `json:"operations"`
		Language   string          `json:"language,omitempty"`
	} `json:"files"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.json>",
	Short: "Apply operations to many files independently in one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	app := appFromContext(cmd.Context())
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	outputFormat, _ := cmd.Flags().GetString("output")

	manifestPath := args[0]
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", manifestPath, err)
	}
	var manifest batchManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parsing manifest %s: %w", manifestPath, err)
	}

	req := protocol.BatchRequest{DryRun: dryRun}
	for _, f := range manifest.Files {
		content, err := os.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.Path, err)
		}

		language := f.Language
		if language == "" {
			tag, ok := langdetect.ForPath(f.Path)
			if !ok {
				return fmt.Errorf("could not detect a supported language for %s", f.Path)
			}
			language = tag
		}

		decoded, err := decodeOperationsRaw(f.Operations)
		if err != nil {
			return fmt.Errorf("parsing operations for %s: %w", f.Path, err)
		}

		req.Files = append(req.Files, protocol.BatchFile{
			Path:       f.Path,
			Content:    string(content),
			Language:   language,
			Operations: decoded,
		})
	}

	eng := engine.New(app.Engine)
	var resp protocol.BatchResponse
	run := func() error {
		resp = eng.ProcessBatch(cmd.Context(), req)
		return nil
	}

	if outputFormat != "json" && logger.IsInteractive() {
		if err := ui.RunSpinner(cmd.Context(), fmt.Sprintf("transforming %d file(s)", len(req.Files)), run); err != nil {
			return err
		}
	} else {
		_ = run()
	}

	if outputFormat == "json" {
		out, err := protocol.Encode(resp)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return batchExitError(resp)
	}

	for _, r := range resp.Results {
		logger.Result(app.Logger, r.Path, r.Changes)
		if !dryRun && r.Content != nil {
			if err := os.WriteFile(r.Path, []byte(*r.Content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", r.Path, err)
			}
		}
	}
	for _, e := range resp.Errors {
		app.Logger.Logf("%s: error (%s): %s\n", e.Path, e.Code, e.Error)
	}

	return batchExitError(resp)
}

func batchExitError(resp protocol.BatchResponse) error {
	if resp.Status == protocol.StatusError {
		return fmt.Errorf("batch: all %d file(s) failed", len(resp.Errors))
	}
	return nil
}
