package spacelabel

import (
	"regexp"
	"slices"
	"strings"
)

// Phrasings like "the room is very large" or "it is round".
var (
	sizeLargeRe  = regexp.MustCompile(`(it|space|room|area|place) is (quite |very |extremely |really |pretty )?(big|large|huge|spacious)`)
	sizeSmallRe  = regexp.MustCompile(`(it|space|room|area|place) is (quite |very |extremely |really |pretty )?(small|tiny|little|compact)`)
	shapeRoundRe = regexp.MustCompile(`(it|space|room|area|place) is (quite |very |extremely |really |pretty )?(round|circular|curved|rounded)`)
	shapeRectRe  = regexp.MustCompile(`(it|space|room|area|place) is (quite |very |extremely |really |pretty )?(rectangular|square)`)

	spatialWordRe = regexp.MustCompile(`\b(large|small|big|huge|tiny|spacious|vast|cramped|tight|narrow|wide|tall|short|high|low|circular|rectangular|square|curved|rounded|angular|triangular|irregular|symmetric|asymmetric|domed|arched|vaulted)\b`)
)

// ExtractSpatialKeywords is the fallback extractor for the spatial category.
// It looks for size and shape synonyms, "<subject> is <adjective>" phrasings
// and a fixed list of literal adjectives, keeps only spatial vocabulary terms
// and removes duplicates in first-seen order.
func (v *Vocabulary) ExtractSpatialKeywords(text string) []string {
	lower := strings.ToLower(text)

	size := matchSynonyms(lower, v.SizeTerms)
	shape := matchSynonyms(lower, v.ShapeTerms)

	if !slices.Contains(size, "large") && !slices.Contains(size, "small") {
		switch {
		case sizeLargeRe.MatchString(lower):
			size = append(size, "large")
		case sizeSmallRe.MatchString(lower):
			size = append(size, "small")
		}
	}

	if len(shape) == 0 {
		switch {
		case shapeRoundRe.MatchString(lower):
			shape = append(shape, "circular")
		case shapeRectRe.MatchString(lower):
			shape = append(shape, "rectangular")
		}
	}

	direct := spatialWordRe.FindAllString(lower, -1)

	all := make([]string, 0, len(size)+len(shape)+len(direct))
	all = append(all, size...)
	all = append(all, shape...)
	all = append(all, direct...)

	kept := all[:0]
	for _, w := range all {
		if v.Has(CategorySpatial, w) {
			kept = append(kept, w)
		}
	}
	return uniqueStrings(kept)
}

// matchSynonyms returns the canonical term of every mapping whose synonyms
// occur as substrings of lower.
func matchSynonyms(lower string, table []Mapping) []string {
	var out []string
	for _, m := range table {
		for _, syn := range m.Cues {
			if strings.Contains(lower, syn) {
				out = append(out, m.Term)
				break
			}
		}
	}
	return out
}
