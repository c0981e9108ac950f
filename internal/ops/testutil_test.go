package ops

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/cst"
)

func rawPosition(t *testing.T, literal string) json.RawMessage {
	t.Helper()
	return json.RawMessage(literal)
}

func parseTS(t *testing.T, source string) (*cst.CST, error) {
	t.Helper()
	tree, err := cst.Parse(context.Background(), []byte(source), "typescript")
	if err != nil {
		return nil, err
	}
	t.Cleanup(tree.Close)
	return tree, nil
}

func parseCSS(t *testing.T, source string) *cst.CST {
	t.Helper()
	tree, err := cst.Parse(context.Background(), []byte(source), "css")
	if err != nil {
		t.Fatalf("parse css: %v", err)
	}
	t.Cleanup(tree.Close)
	return tree
}
