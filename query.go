package spacelabel

import (
	"regexp"
	"slices"
	"strings"
)

// minTokenLen is the shortest token kept by the extractor; shorter tokens are
// articles, prepositions and captioner noise.
const minTokenLen = 3

var wordRe = regexp.MustCompile(`\w+`)

// tokenize lowercases text and splits it into word tokens.
func tokenize(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// splitCompounds undoes captioner run-ons such as "andaspeaker" or "apiano":
// when a token starts with a known short prefix and the remainder is itself a
// vocabulary or excluded term, only the remainder is kept. Longer prefixes are
// tried first.
func (v *Vocabulary) splitCompounds(words []string) []string {
	prefixes := make([]string, len(v.CompoundPrefixes))
	copy(prefixes, v.CompoundPrefixes)
	slices.SortStableFunc(prefixes, func(a, b string) int { return len(b) - len(a) })

	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, v.stripPrefix(w, prefixes))
	}
	return out
}

func (v *Vocabulary) stripPrefix(word string, prefixes []string) string {
	for _, p := range prefixes {
		if !strings.HasPrefix(word, p) || len(word) <= len(p)+2 {
			continue
		}
		rest := word[len(p):]
		if v.IsValidTerm(rest) || v.Excluded.Has(rest) {
			return rest
		}
	}
	return word
}

// meaningfulTokens tokenizes text, splits run-on compounds and drops stop
// words, short tokens and excluded terms.
func (v *Vocabulary) meaningfulTokens(text string) []string {
	words := v.splitCompounds(tokenize(text))
	kept := words[:0]
	for _, w := range words {
		if v.StopWords.Has(w) || len(w) < minTokenLen {
			continue
		}
		if v.Excluded.Has(w) {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}
