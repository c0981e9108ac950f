package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/config"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/logger"
)

// Context key for the shared configuration.
const ConfigKey = "config"

var configPath string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "transform",
	Short: "Apply structured, correct-by-construction edits to TS/JS/CSS source",
	Long: `transform parses TypeScript, TSX, JavaScript, JSX, and CSS source into a
concrete syntax tree, computes byte-level edits from a closed set of named
operations, composes them into a conflict-free edit set, applies them, and
re-parses the result to verify it is syntactically valid before it is ever
written back to disk.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	engineCfg, err := config.LoadEngineConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var log logger.Logger
	if logger.IsInteractive() {
		log = logger.NewUILogger()
	} else {
		log = &logger.StdoutLogger{}
	}

	app := NewAppConfig(engineCfg, log)
	ctx := context.WithValue(context.Background(), ConfigKey, app)
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to .transformrc.yaml (default: search cwd and home)")
	rootCmd.PersistentFlags().BoolP("dry-run", "n", false, "compute and report edits without writing them")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text, json)")
}

func appFromContext(ctx context.Context) *AppConfig {
	app, ok := ctx.Value(ConfigKey).(*AppConfig)
	if !ok {
		fmt.Fprintln(os.Stderr, "transform: missing app config in context")
		os.Exit(1)
	}
	return app
}
