package spacelabel

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// NoLabel pads a label up to the configured minimum number of terms.
const NoLabel = "NoLabel"

// Selection limits.
const (
	DefaultMinKeywords = 5
	DefaultMaxKeywords = 15

	maxLabelLen = 240

	maxMaterials     = 6
	maxPlaceTypes    = 2
	maxShapes        = 2
	minRepeatedCount = 2
)

// Label is the ordered list of selected terms and the filename stem built
// from them.
type Label struct {
	Terms []string
	Text  string
}

func (l Label) String() string { return l.Text }

// counter counts terms and remembers the order they were first seen in, so
// that sorting by frequency is deterministic.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter(terms ...string) *counter {
	c := &counter{counts: make(map[string]int)}
	c.add(terms...)
	return c
}

func (c *counter) add(terms ...string) {
	for _, t := range terms {
		if _, ok := c.counts[t]; !ok {
			c.order = append(c.order, t)
		}
		c.counts[t]++
	}
}

// clone returns an independent copy; a nil counter clones to an empty one.
func (c *counter) clone() *counter {
	out := newCounter()
	if c == nil {
		return out
	}
	out.order = slices.Clone(c.order)
	maps.Copy(out.counts, c.counts)
	return out
}

func (c *counter) get(term string) int { return c.counts[term] }

// ranked returns the terms accepted by keep, most frequent first; equal counts
// keep first-seen order.
func (c *counter) ranked(keep func(term string, n int) bool) []string {
	var out []string
	for _, t := range c.order {
		if keep == nil || keep(t, c.counts[t]) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b string) int { return c.counts[b] - c.counts[a] })
	return out
}

// FolderKeywords collects the keywords of one folder's images.
type FolderKeywords struct {
	// Observed holds every occurrence of every term, per category.
	Observed KeywordSet

	// images counts, per term, the images it was seen in.
	images *counter
}

func NewFolderKeywords() *FolderKeywords {
	return &FolderKeywords{Observed: NewKeywordSet(), images: newCounter()}
}

// AddImage merges the keywords of one image. However often an image repeats
// a term, it adds one to the term's image count.
func (f *FolderKeywords) AddImage(ks KeywordSet) {
	if f.Observed == nil {
		f.Observed = NewKeywordSet()
	}
	if f.images == nil {
		f.images = newCounter()
	}
	f.Observed.Merge(ks)
	var terms []string
	for _, c := range Categories {
		terms = append(terms, ks[c]...)
	}
	f.images.add(uniqueStrings(terms)...)
}

// ImageCount returns the number of images term was seen in.
func (f *FolderKeywords) ImageCount(term string) int {
	if f == nil || f.images == nil {
		return 0
	}
	return f.images.get(term)
}

// BuildLabel reduces the terms observed across a folder's images, plus the
// folder's context hints, to a label of between minKeywords and maxKeywords
// terms.
//
// Materials seen at least twice (up to 6) come first, then up to 2 place types
// (seen twice, backfilled from those seen once). When no acoustic property was
// observed, up to 3 are inferred from the other categories. The most frequent
// architecture term and acoustic property follow, then the top size descriptor
// and up to 2 shape descriptors. Selection counts occurrences. Contradictory
// pairs and synonym groups are reduced to the member found in the most images,
// duplicates dropped, and the result truncated or padded with NoLabel.
func (v *Vocabulary) BuildLabel(fk *FolderKeywords, hints ContextHints, minKeywords, maxKeywords int) Label {
	if fk == nil {
		fk = NewFolderKeywords()
	}
	folder := fk.Observed.Clone()
	all := fk.images.clone()

	for _, c := range Categories {
		for _, hint := range hints.Terms(c) {
			if v.Has(c, hint) && !slices.Contains(folder[c], hint) {
				folder[c] = append(folder[c], hint)
				all.add(hint)
				slog.Debug("spacelabel: added context keyword", "term", hint, "category", c)
			}
		}
	}

	if folder.Len() == 0 {
		return finishLabel(nil, minKeywords, maxKeywords)
	}

	counts := make(map[Category]*counter, len(Categories))
	for _, c := range Categories {
		counts[c] = newCounter(folder[c]...)
	}

	repeated := func(_ string, n int) bool { return n >= minRepeatedCount }
	once := func(_ string, n int) bool { return n == 1 }
	seen := func(_ string, n int) bool { return n >= 1 }

	materials := capList(counts[CategoryMaterials].ranked(repeated), maxMaterials)

	places := capList(counts[CategoryPlaceType].ranked(repeated), maxPlaceTypes)
	if len(places) < maxPlaceTypes {
		backfill := counts[CategoryPlaceType].ranked(once)
		places = append(places, capList(backfill, maxPlaceTypes-len(places))...)
	}

	selected := make([]string, 0, maxKeywords)
	selected = append(selected, materials...)
	selected = append(selected, places...)

	if len(folder[CategoryAcoustic]) == 0 {
		inferred := v.InferAcoustic(places, materials, folder[CategoryArchitecture], folder[CategorySpatial])
		if len(inferred) > 0 {
			slog.Debug("spacelabel: inferred acoustic properties", "terms", inferred)
			folder[CategoryAcoustic] = append(folder[CategoryAcoustic], inferred...)
			all.add(inferred...)
		}
	}

	for _, c := range []Category{CategoryArchitecture, CategoryAcoustic} {
		if top := counts[c].ranked(seen); len(top) > 0 {
			selected = append(selected, top[0])
		} else if c == CategoryAcoustic && len(folder[CategoryAcoustic]) > 0 {
			selected = append(selected, folder[CategoryAcoustic][0])
		}
	}

	spatial := counts[CategorySpatial]
	sizes := spatial.ranked(func(t string, n int) bool { return n >= 1 && !v.isShape(t) })
	shapes := spatial.ranked(func(t string, n int) bool { return n >= 1 && v.isShape(t) })
	if len(sizes) > 0 {
		selected = append(selected, sizes[0])
	}
	selected = append(selected, capList(shapes, maxShapes)...)

	selected = v.filterContradictions(selected, all)
	selected = v.filterSynonyms(selected, all)

	return finishLabel(uniqueStrings(selected), minKeywords, maxKeywords)
}

// finishLabel truncates terms to maxKeywords, pads with NoLabel up to
// minKeywords and joins the result into a filename stem of at most 240
// characters.
func finishLabel(terms []string, minKeywords, maxKeywords int) Label {
	if maxKeywords < minKeywords {
		maxKeywords = minKeywords
	}
	terms = capList(terms, maxKeywords)
	for len(terms) < minKeywords {
		terms = append(terms, NoLabel)
	}

	return Label{Terms: terms, Text: truncateRunes(strings.Join(terms, "_"), maxLabelLen)}
}

func capList(list []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}

// truncateRunes cuts s to at most n characters without splitting a UTF-8
// sequence.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for range n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
