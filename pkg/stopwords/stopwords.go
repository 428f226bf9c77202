// Package stopwords resolves the effective exclusion set for a document:
// a built-in base table of function words shared by every document, optionally
// widened by a YAML configuration file that adds extra base words and
// per-document override sets.
package stopwords

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is a case-normalized token exclusion set.
type Set map[string]struct{}

// NewSet builds a set from the given words, lowercasing each one.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Contains reports whether the word is excluded. The word is expected to be
// lowercase already; the tokenizer normalizes before filtering.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Union returns a new set holding every word from both sets.
func (s Set) Union(other Set) Set {
	merged := make(Set, len(s)+len(other))
	for w := range s {
		merged[w] = struct{}{}
	}
	for w := range other {
		merged[w] = struct{}{}
	}
	return merged
}

// fileConfig is the on-disk YAML shape.
type fileConfig struct {
	// Extra words appended to the built-in base table.
	Base []string `yaml:"base"`
	// Per-document override sets, keyed by document name.
	Documents map[string][]string `yaml:"documents"`
}

// Config is a resolved stopword configuration source. The zero value excludes
// nothing; NewConfig starts from the built-in base table.
type Config struct {
	base      Set
	overrides map[string]Set
}

// NewConfig returns a configuration backed only by the built-in base table.
func NewConfig() *Config {
	return &Config{base: baseWords()}
}

// LoadFile reads a YAML stopword configuration and merges it over the built-in
// base table.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stopword config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse stopword config %s: %w", path, err)
	}

	cfg := NewConfig()
	cfg.base = cfg.base.Union(NewSet(fc.Base...))
	if len(fc.Documents) > 0 {
		cfg.overrides = make(map[string]Set, len(fc.Documents))
		for name, words := range fc.Documents {
			cfg.overrides[name] = NewSet(words...)
		}
	}
	return cfg, nil
}

// Resolve returns the effective exclusion set for the named document: the base
// table plus that document's override set, if any. Resolved once per document;
// the returned set is never mutated afterwards.
func (c *Config) Resolve(document string) Set {
	override, ok := c.overrides[document]
	if !ok {
		return c.base
	}
	return c.base.Union(override)
}
