package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineConfig carries non-functional defaults the engine falls back to
// when a source file gives no signal of its own (e.g. a brand-new file
// with no existing imports to sample a quote style from).
//
// None of these fields are required for correctness: engine.New falls
// back to DefaultEngineConfig when given nil, and LanguageEnabled treats
// an unlisted language as enabled.
type EngineConfig struct {
	// Formatting contains the fallback formatting defaults.
	Formatting FormattingConfig `yaml:"formatting"`

	// Languages maps a language tag to its per-language overrides.
	Languages map[string]LanguageConfig `yaml:"languages"`
}

// FormattingConfig holds the fallback formatting values handed to every
// operation executor. Of its fields, only QuoteStyle is read by an
// executor; Indent and TrailingNewline are loaded and carried but no
// executor reads them.
type FormattingConfig struct {
	// Indent is a unit of indentation such as "  " or "\t". No executor
	// reads it; executors take indentation from the source itself.
	Indent string `yaml:"indent"`

	// QuoteStyle is "single" or "double"; add_import uses it when the
	// file has no existing string literal to sample.
	QuoteStyle string `yaml:"quote_style"`

	// TrailingNewline is loaded from the config file but no executor
	// reads it: output never gets a final newline appended, and existing
	// trailing-newline state is left as it is.
	TrailingNewline bool `yaml:"trailing_newline"`
}

// LanguageConfig contains per-language overrides.
type LanguageConfig struct {
	// Enabled disables processing of a language tag entirely; a disabled
	// language is reported as UNSUPPORTED_LANGUAGE even though the
	// parser adapter could handle it.
	Enabled bool `yaml:"enabled"`
}

// DefaultEngineConfig returns the configuration used when no config file
// is present, mirroring every supported language tag as enabled.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Formatting: FormattingConfig{
			Indent:          "  ",
			QuoteStyle:      "single",
			TrailingNewline: true,
		},
		Languages: map[string]LanguageConfig{
			"typescript": {Enabled: true},
			"tsx":        {Enabled: true},
			"javascript": {Enabled: true},
			"jsx":        {Enabled: true},
			"css":        {Enabled: true},
		},
	}
}

// LoadEngineConfig reads a YAML config file, falling back to defaults for
// any field the file does not set. A missing file is not an error: the
// default configuration is returned unchanged.
func LoadEngineConfig(path string) (*EngineConfig, error) {
	cfg := DefaultEngineConfig()

	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	candidates := []string{
		".transformrc.yaml",
		".transformrc.yml",
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, candidate := range candidates {
		full := filepath.Join(homeDir, candidate)
		if _, err := os.Stat(full); err == nil {
			return full
		}
	}
	return ""
}

// LanguageEnabled reports whether the given language tag is enabled under
// cfg. A nil config enables every known language.
func (c *EngineConfig) LanguageEnabled(language string) bool {
	if c == nil {
		return true
	}
	lc, ok := c.Languages[language]
	if !ok {
		return true
	}
	return lc.Enabled
}
