package spacelabel

import (
	"log/slog"
	"slices"
)

// filterContradictions removes, for every contradictory pair fully present in
// terms, the member seen less often according to freq. On equal counts the
// second member of the pair is removed.
func (v *Vocabulary) filterContradictions(terms []string, freq *counter) []string {
	out := slices.Clone(terms)
	for _, pair := range v.Contradictions {
		a, b := pair[0], pair[1]
		if !slices.Contains(out, a) || !slices.Contains(out, b) {
			continue
		}
		drop := b
		if freq.get(a) < freq.get(b) {
			drop = a
		}
		slog.Debug("spacelabel: dropped contradictory term", "kept", otherOf(pair, drop), "dropped", drop)
		out = removeAll(out, drop)
	}
	return out
}

// filterSynonyms keeps only the most frequent member of every synonym group
// with two or more members present in terms. Equal counts favour the member
// listed first in the group.
func (v *Vocabulary) filterSynonyms(terms []string, freq *counter) []string {
	out := slices.Clone(terms)
	for _, group := range v.Synonyms {
		var present []string
		for _, s := range group {
			if slices.Contains(out, s) {
				present = append(present, s)
			}
		}
		if len(present) < 2 {
			continue
		}

		best := present[0]
		for _, s := range present[1:] {
			if freq.get(s) > freq.get(best) {
				best = s
			}
		}
		for _, s := range present {
			if s != best {
				out = removeAll(out, s)
			}
		}
		slog.Debug("spacelabel: collapsed synonyms", "kept", best, "group", present)
	}
	return out
}

func otherOf(pair [2]string, term string) string {
	if pair[0] == term {
		return pair[1]
	}
	return pair[0]
}
