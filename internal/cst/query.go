package cst

import (
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/languages"
)

// Match is one query match: the outermost matched node plus its named
// captures, keyed by capture name as written in the pattern.
type Match struct {
	Node     *sitter.Node
	Captures map[string]*sitter.Node
}

// compiledQueryCache memoizes compiled queries per (language pointer,
// pattern) pair. Queries are immutable once compiled and are shared
// read-only across requests, per the engine's no-mutable-state design.
var (
	compiledQueryMu    sync.Mutex
	compiledQueryCache = map[*sitter.Language]map[string]*sitter.Query{}
)

func compileQuery(lang *sitter.Language, pattern string) (*sitter.Query, error) {
	compiledQueryMu.Lock()
	defer compiledQueryMu.Unlock()

	byPattern, ok := compiledQueryCache[lang]
	if !ok {
		byPattern = make(map[string]*sitter.Query)
		compiledQueryCache[lang] = byPattern
	}
	if q, ok := byPattern[pattern]; ok {
		return q, nil
	}

	q, err := sitter.NewQuery([]byte(pattern), lang)
	if err != nil {
		return nil, fmt.Errorf("cst: compile query: %w", err)
	}
	byPattern[pattern] = q
	return q, nil
}

// Query runs pattern over node (typically c.Root(), or a sub-node to
// scope the search) and returns every match it finds.
func (c *CST) Query(node *sitter.Node, pattern string) ([]Match, error) {
	plugin, err := c.grammar()
	if err != nil {
		return nil, err
	}

	query, err := compileQuery(plugin, pattern)
	if err != nil {
		return nil, err
	}

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, node)

	var matches []Match
	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		match := Match{Captures: make(map[string]*sitter.Node, len(m.Captures))}
		for _, capture := range m.Captures {
			name := query.CaptureNameForId(capture.Index)
			match.Captures[name] = capture.Node
			if match.Node == nil {
				match.Node = capture.Node
			}
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func (c *CST) grammar() (*sitter.Language, error) {
	plugin, ok := languages.Default.Get(c.language)
	if !ok {
		return nil, fmt.Errorf("cst: unsupported language %q", c.language)
	}
	return plugin.Grammar(), nil
}
