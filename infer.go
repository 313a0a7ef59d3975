package spacelabel

import "slices"

// Weights of each evidence source when inferring acoustic properties.
const (
	placeTypeWeight    = 3
	materialWeight     = 2
	architectureWeight = 2
	spatialWeight      = 1

	maxInferredAcoustic = 3
)

// InferAcoustic scores the core acoustic properties associated with the given
// terms and returns up to three with a nonzero score, highest first. Equal
// scores keep the order of Vocabulary.CoreAcoustic.
//
// places and materials are the already-selected terms; architecture and
// spatial are every observed occurrence, so repeated terms weigh more.
func (v *Vocabulary) InferAcoustic(places, materials, architecture, spatial []string) []string {
	scores := make(map[string]int, len(v.CoreAcoustic))

	score := func(terms []string, weight int) {
		for _, t := range terms {
			for _, prop := range v.AcousticMapping[t] {
				if slices.Contains(v.CoreAcoustic, prop) {
					scores[prop] += weight
				}
			}
		}
	}
	score(places, placeTypeWeight)
	score(materials, materialWeight)
	score(architecture, architectureWeight)
	score(spatial, spatialWeight)

	var ranked []string
	for _, prop := range v.CoreAcoustic {
		if scores[prop] > 0 {
			ranked = append(ranked, prop)
		}
	}
	slices.SortStableFunc(ranked, func(a, b string) int { return scores[b] - scores[a] })

	return capList(ranked, maxInferredAcoustic)
}
