package spacelabel

import (
	"fmt"
	"slices"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// vocabularyFile is the on-disk shape of a vocabulary override. Every section
// is optional; a present section replaces the built-in table wholesale.
type vocabularyFile struct {
	Categories     map[string][]string            `yaml:"categories"`
	Excluded       []string                       `yaml:"excluded"`
	StopWords      []string                       `yaml:"stop_words"`
	Contradictions [][]string                     `yaml:"contradictions"`
	Synonyms       [][]string                     `yaml:"synonyms"`
	CompoundTerms  map[string][]string            `yaml:"compound_terms"`
	FolderAliases  map[string]string              `yaml:"folder_aliases"`
	IgnoredParts   []string                       `yaml:"ignored_path_parts"`
	Acoustic       map[string][]string            `yaml:"acoustic_mapping"`
	Prompts        map[string][]string            `yaml:"prompts"`
	Context        map[string]map[string][]string `yaml:"context_keywords"`
}

// LoadVocabulary reads a YAML override from path on fs and applies it on top
// of DefaultVocabulary.
func LoadVocabulary(fs afero.Fs, path string) (*Vocabulary, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary applies a YAML override document to DefaultVocabulary.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var f vocabularyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}

	v := DefaultVocabulary()

	for name, terms := range f.Categories {
		c, err := parseCategory(name)
		if err != nil {
			return nil, err
		}
		v.Terms[c] = NewTermSet(lowerAll(terms)...)
	}
	if f.Excluded != nil {
		v.Excluded = NewTermSet(lowerAll(f.Excluded)...)
	}
	if f.StopWords != nil {
		v.StopWords = NewTermSet(lowerAll(f.StopWords)...)
	}
	if f.Contradictions != nil {
		pairs := make([][2]string, 0, len(f.Contradictions))
		for _, p := range f.Contradictions {
			if len(p) != 2 { //nolint:mnd // a pair
				return nil, fmt.Errorf("contradiction %v: want exactly two terms", p)
			}
			pairs = append(pairs, [2]string{p[0], p[1]})
		}
		v.Contradictions = pairs
	}
	if f.Synonyms != nil {
		v.Synonyms = f.Synonyms
	}
	for name, phrases := range f.CompoundTerms {
		c, err := parseCategory(name)
		if err != nil {
			return nil, err
		}
		v.CompoundTerms[c] = lowerAll(phrases)
	}
	if f.FolderAliases != nil {
		// Map order is random; sort patterns so scoring stays deterministic.
		v.FolderAliases = nil
		for _, pattern := range sortedKeys(f.FolderAliases) {
			v.FolderAliases = append(v.FolderAliases, FolderAlias{Pattern: pattern, Term: f.FolderAliases[pattern]})
		}
	}
	if f.IgnoredParts != nil {
		v.IgnoredPathParts = NewTermSet(lowerAll(f.IgnoredParts)...)
	}
	for term, props := range f.Acoustic {
		v.AcousticMapping[term] = props
	}
	for name, prompts := range f.Prompts {
		c, err := parseCategory(name)
		if err != nil {
			return nil, err
		}
		if len(prompts) == 0 {
			return nil, fmt.Errorf("prompts for %s: empty list", name)
		}
		v.Prompts[c] = prompts
	}
	for name, table := range f.Context {
		c, err := parseCategory(name)
		if err != nil {
			return nil, err
		}
		mappings := make([]Mapping, 0, len(table))
		for _, kw := range sortedKeys(table) {
			mappings = append(mappings, Mapping{Term: kw, Cues: lowerAll(table[kw])})
		}
		v.ContextKeywords[c] = mappings
		if !slices.Contains(v.ContextOrder, c) {
			v.ContextOrder = append(v.ContextOrder, c)
		}
	}

	return v, nil
}

// parseCategory converts a category name to a Category.
func parseCategory(name string) (Category, error) {
	for _, c := range categoryPriority {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}
