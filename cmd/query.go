package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
	"github.com/that-in-rust/parseltongue-fe-mcp/internal/langdetect"
)

var queryCmd = &cobra.Command{
	Use:   "query <file> <pattern>",
	Short: "Run a tree-sitter query against a file and print the matches",
	Long: `query parses a file under its detected grammar and evaluates a raw
tree-sitter query pattern against its root node, printing each match's
node kind, line:column, and source text. It is a debugging aid for
writing new query patterns, not part of the transformation pipeline.`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&languageFlag, "language", "", "wire language tag; detected from the file extension when omitted")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	path, pattern := args[0], args[1]

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

	tree, err := cst.Parse(cmd.Context(), content, language)
	if err != nil {
		return err
	}
	defer tree.Close()

	matches, err := tree.Query(tree.Root(), pattern)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if len(matches) == 0 {
		fmt.Println("no matches")
		return nil
	}

	for _, m := range matches {
		node, ok := m.Captures["node"]
		if !ok {
			node = m.Node
		}
		if node == nil {
			continue
		}
		line, col := cst.LineColumn(content, int(node.StartByte()))
		fmt.Printf("%d:%d %s %q\n", line, col, node.Type(), tree.Text(node))
	}
	return nil
}
