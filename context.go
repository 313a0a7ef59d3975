package spacelabel

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// Confidence contributed by each kind of folder-name evidence.
const (
	directMatchScore    = 5
	folderAliasScore    = 4
	contextKeywordScore = 1

	minHintConfidence = 1
)

var (
	partSplitRe  = regexp.MustCompile(`[-_]`)
	folderWordRe = regexp.MustCompile(`\b[a-z]{3,}\b`)
)

// HintScore is the accumulated confidence of one inferred term, split by the
// kind of evidence that produced it.
type HintScore struct {
	Direct   int // part is a vocabulary term
	Compound int // part matches a compound folder alias
	Context  int // part words are cues for the term
}

// Total returns the summed confidence.
func (s HintScore) Total() int { return s.Direct + s.Compound + s.Context }

// ContextHints are terms inferred from a folder path alone, grouped by the
// category they were attributed to.
type ContextHints struct {
	ByCategory map[Category][]string
	Scores     map[string]HintScore
}

// Terms returns the hinted terms for category.
func (h ContextHints) Terms(category Category) []string {
	return h.ByCategory[category]
}

// hintAccumulator collects evidence per term in first-seen order.
type hintAccumulator struct {
	order      []string
	scores     map[string]*HintScore
	categories map[string][]Category
}

func newHintAccumulator() *hintAccumulator {
	return &hintAccumulator{
		scores:     make(map[string]*HintScore),
		categories: make(map[string][]Category),
	}
}

func (a *hintAccumulator) add(term string, c Category) *HintScore {
	s, ok := a.scores[term]
	if !ok {
		s = &HintScore{}
		a.scores[term] = s
		a.order = append(a.order, term)
	}
	a.categories[term] = append(a.categories[term], c)
	return s
}

// AnalyzeFolderContext infers category hints from the segments of path. It
// never looks at image content.
//
// Each segment, and then each of its hyphen/underscore parts, is scored, so a
// plain segment such as "studio" is scored twice. An exact vocabulary term
// scores 5 in every category that holds it, a compound folder alias
// ("council-chamber") scores 4 for its place type, and every word that is a
// cue in the context keyword table scores 1 for the cued term. Terms with
// confidence of at least 1 are attributed to the category they were implicated
// in most often; ties go to the earliest category in declaration order.
func (v *Vocabulary) AnalyzeFolderContext(path string) ContextHints {
	parts := v.pathParts(path)
	acc := newHintAccumulator()

	for _, c := range categoryPriority {
		for _, part := range parts {
			if v.Has(c, part) {
				acc.add(part, c).Direct += directMatchScore
				slog.Debug("spacelabel: folder direct match", "part", part, "category", c)
			}
		}
	}

	for _, part := range parts {
		for _, alias := range v.FolderAliases {
			if matchesAlias(part, alias.Pattern) {
				acc.add(alias.Term, CategoryPlaceType).Compound += folderAliasScore
				slog.Debug("spacelabel: folder alias", "part", part, "term", alias.Term)
			}
		}
	}

	for _, part := range parts {
		words := folderWordRe.FindAllString(part, -1)
		for _, c := range v.ContextOrder {
			for _, m := range v.ContextKeywords[c] {
				for _, w := range words {
					if w == m.Term || slices.Contains(m.Cues, w) {
						acc.add(m.Term, c).Context += contextKeywordScore
					}
				}
			}
		}
	}

	hints := ContextHints{
		ByCategory: make(map[Category][]string),
		Scores:     make(map[string]HintScore),
	}
	for _, term := range acc.order {
		score := *acc.scores[term]
		if score.Total() < minHintConfidence {
			continue
		}
		c := dominantCategory(acc.categories[term])
		hints.ByCategory[c] = append(hints.ByCategory[c], term)
		hints.Scores[term] = score
	}

	if len(hints.Scores) > 0 {
		slog.Info("spacelabel: folder context hints", "path", path, "hints", hints.ByCategory)
	}
	return hints
}

// pathParts lowercases path, splits it into segments, drops non-informative
// ones and returns every remaining segment followed by its -/_ subparts. A
// segment without separators is its own single subpart and so appears twice.
func (v *Vocabulary) pathParts(path string) []string {
	normalized := strings.ToLower(strings.ReplaceAll(path, `\`, "/"))
	var parts []string
	for _, seg := range strings.Split(normalized, "/") {
		if seg == "" || v.IgnoredPathParts.Has(seg) {
			continue
		}
		parts = append(parts, seg)
		for _, sub := range partSplitRe.Split(seg, -1) {
			if sub != "" {
				parts = append(parts, sub)
			}
		}
	}
	return parts
}

// matchesAlias reports whether part contains pattern or every hyphen-separated
// word of pattern.
func matchesAlias(part, pattern string) bool {
	if strings.Contains(part, pattern) {
		return true
	}
	for _, w := range strings.Split(pattern, "-") {
		if !strings.Contains(part, w) {
			return false
		}
	}
	return true
}

// dominantCategory returns the most frequent category in list, breaking ties by
// declaration order.
func dominantCategory(list []Category) Category {
	counts := make(map[Category]int, len(list))
	for _, c := range list {
		counts[c]++
	}
	var best Category
	bestN := 0
	for _, c := range categoryPriority {
		if counts[c] > bestN {
			best, bestN = c, counts[c]
		}
	}
	return best
}
