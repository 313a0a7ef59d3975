package spacelabel

import "strings"

// Category is one of the fixed description axes a keyword can belong to.
type Category string

const (
	CategoryMaterials    Category = "materials"
	CategorySpatial      Category = "spatial"
	CategoryArchitecture Category = "architecture"
	CategoryPlaceType    Category = "place_type"
	CategoryAcoustic     Category = "acoustic_properties"
)

// Categories is the order in which categories are extracted and selected.
var Categories = []Category{
	CategoryMaterials,
	CategoryPlaceType,
	CategoryArchitecture,
	CategoryAcoustic,
	CategorySpatial,
}

// categoryPriority is the declaration order of the vocabulary. It breaks ties
// when a folder-context hint is implicated in several categories equally often.
var categoryPriority = []Category{
	CategoryMaterials,
	CategorySpatial,
	CategoryArchitecture,
	CategoryPlaceType,
	CategoryAcoustic,
}

// Label returns the category name with underscores replaced by spaces.
func (c Category) Label() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// TermSet is an insertion-ordered set of lowercase terms. The zero value is an
// empty set. A TermSet is never mutated after construction.
type TermSet struct {
	list  []string
	index map[string]struct{}
}

// NewTermSet builds a set from terms, dropping duplicates but keeping the
// first-seen order.
func NewTermSet(terms ...string) TermSet {
	ts := TermSet{index: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		if _, ok := ts.index[t]; ok {
			continue
		}
		ts.index[t] = struct{}{}
		ts.list = append(ts.list, t)
	}
	return ts
}

// Has reports whether term is a member.
func (ts TermSet) Has(term string) bool {
	_, ok := ts.index[term]
	return ok
}

// Len returns the number of distinct terms.
func (ts TermSet) Len() int { return len(ts.list) }

// Terms returns a copy of the members in insertion order.
func (ts TermSet) Terms() []string {
	out := make([]string, len(ts.list))
	copy(out, ts.list)
	return out
}

// Mapping associates a canonical term with the words that imply it.
type Mapping struct {
	Term string
	Cues []string
}

// FolderAlias maps a compound folder name such as "council-chamber" onto a
// place-type term.
type FolderAlias struct {
	Pattern string
	Term    string
}

// Vocabulary bundles every static table the extractor, the folder context
// analyzer and the aggregator consult. Build one with DefaultVocabulary or
// LoadVocabulary and treat it as read-only afterwards.
type Vocabulary struct {
	Terms map[Category]TermSet

	Excluded         TermSet
	StopWords        TermSet
	CompoundPrefixes []string

	Contradictions [][2]string
	Synonyms       [][]string

	// CompoundTerms are multi-word phrases ("conference room") recognized per
	// category and emitted hyphenated.
	CompoundTerms map[Category][]string
	RoomTypes     []Mapping

	SizeTerms        []Mapping
	ShapeTerms       []Mapping
	ShapeDescriptors TermSet

	IgnoredPathParts TermSet
	FolderAliases    []FolderAlias
	ContextKeywords  map[Category][]Mapping
	ContextOrder     []Category

	AcousticMapping map[string][]string
	CoreAcoustic    []string

	PlanFilenameKeywords []string
	PlanCaptionKeywords  []string

	Prompts           map[Category][]string
	SpatialAltPrompts []string
	QuestionFragments []string
	GenericResponses  []string
}

// Has reports whether term belongs to category's vocabulary.
func (v *Vocabulary) Has(category Category, term string) bool {
	return v.Terms[category].Has(term)
}

// IsValidTerm reports whether term belongs to any category's vocabulary.
func (v *Vocabulary) IsValidTerm(term string) bool {
	for _, c := range categoryPriority {
		if v.Terms[c].Has(term) {
			return true
		}
	}
	return false
}

// isShape reports whether term is a shape rather than a size descriptor.
func (v *Vocabulary) isShape(term string) bool {
	return v.ShapeDescriptors.Has(term)
}
