package spacelabel

import (
	"log/slog"
	"slices"
	"strings"
)

// KeywordSet maps each category to the terms extracted for it. A term may
// appear several times; counting happens at folder level.
type KeywordSet map[Category][]string

// NewKeywordSet returns a KeywordSet with an empty list for every category.
func NewKeywordSet() KeywordSet {
	ks := make(KeywordSet, len(Categories))
	for _, c := range Categories {
		ks[c] = []string{}
	}
	return ks
}

// Merge appends every term of other to ks.
func (ks KeywordSet) Merge(other KeywordSet) {
	for _, c := range Categories {
		ks[c] = append(ks[c], other[c]...)
	}
}

// Clone returns a deep copy of ks.
func (ks KeywordSet) Clone() KeywordSet {
	out := NewKeywordSet()
	out.Merge(ks)
	return out
}

// Len returns the total number of terms across categories.
func (ks KeywordSet) Len() int {
	n := 0
	for _, terms := range ks {
		n += len(terms)
	}
	return n
}

// ExtractKeywords returns the terms of text that belong to category, in text
// order. For place types it also emits hyphenated compound phrases
// ("conference-room") and, when the text mentions a room without saying which
// kind, a qualified room term inferred from cue words.
func (v *Vocabulary) ExtractKeywords(text string, category Category) []string {
	var found []string
	for _, w := range v.meaningfulTokens(text) {
		if v.Has(category, w) {
			found = append(found, w)
		}
	}

	if category != CategoryPlaceType {
		return found
	}

	found = append(found, v.compoundTerms(text, category)...)

	if room := v.qualifyRoom(text); room != "" && !slices.Contains(found, room) {
		slog.Debug("spacelabel: qualified generic room", "room", room)
		found = append(found, room)
	}

	return found
}

// compoundTerms returns the hyphenated form of every known multi-word phrase
// of category present in text.
func (v *Vocabulary) compoundTerms(text string, category Category) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, phrase := range v.CompoundTerms[category] {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			out = append(out, strings.ReplaceAll(phrase, " ", "-"))
		}
	}
	return out
}

// qualifyRoom turns a bare mention of "room" into a specific room type such as
// "meeting-room" when cue words for that type occur in the text. It returns ""
// if the text has no bare room mention, already names a room type, or no cue
// matches.
func (v *Vocabulary) qualifyRoom(text string) string {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, " room") {
		return ""
	}
	for _, rt := range v.RoomTypes {
		if strings.Contains(lower, rt.Term+"-room") || strings.Contains(lower, rt.Term+" room") {
			return ""
		}
	}
	for _, rt := range v.RoomTypes {
		for _, cue := range rt.Cues {
			if strings.Contains(lower, cue) {
				return rt.Term + "-room"
			}
		}
	}
	return ""
}
