package languages

import "sort"

// LanguageRegistry is a lookup from wire language tag to LanguagePlugin.
type LanguageRegistry struct {
	plugins map[string]LanguagePlugin
}

// Default is the registry seeded with the five languages this engine
// supports: typescript, tsx, javascript, jsx, css.
var Default = newDefaultRegistry()

func newDefaultRegistry() *LanguageRegistry {
	r := &LanguageRegistry{plugins: make(map[string]LanguagePlugin)}
	r.Register(newTypeScriptPlugin())
	r.Register(newTSXPlugin())
	r.Register(newJavaScriptPlugin())
	r.Register(newJSXPlugin())
	r.Register(newCSSPlugin())
	return r
}

// Register adds or replaces the plugin for its ID.
func (r *LanguageRegistry) Register(plugin LanguagePlugin) {
	r.plugins[plugin.ID()] = plugin
}

// Get looks up a plugin by wire language tag.
func (r *LanguageRegistry) Get(id string) (LanguagePlugin, bool) {
	p, ok := r.plugins[id]
	return p, ok
}

// All returns a shallow copy of the registered plugins, keyed by ID.
func (r *LanguageRegistry) All() map[string]LanguagePlugin {
	out := make(map[string]LanguagePlugin, len(r.plugins))
	for k, v := range r.plugins {
		out[k] = v
	}
	return out
}

// IDs returns the sorted set of supported language tags.
func (r *LanguageRegistry) IDs() []string {
	ids := make([]string, 0, len(r.plugins))
	for id := range r.plugins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
