package spacelabel

import "strings"

const (
	describePrompt     = "Describe what you see in this image"
	sizeQuestionPrompt = "Is this room large or small?"
)

// spatialPromptCues mark a prompt as asking about size or shape, which gets a
// spatial alternate when the first answer is unusable.
var spatialPromptCues = []string{"spatial", "shape", "size"}

// promptFor returns the prompt used on the given probing attempt for
// category, rotating through the category's prompts. Categories without
// prompts get a generic description request.
func (v *Vocabulary) promptFor(category Category, attempt int) string {
	prompts := v.Prompts[category]
	if len(prompts) == 0 {
		return "Describe the " + category.Label() + " of this space"
	}
	return prompts[attempt%len(prompts)]
}

// simplePrompt is the last attempt for a category that is still empty after
// probing.
func simplePrompt(category Category) string {
	if category == CategorySpatial {
		return sizeQuestionPrompt
	}
	return "This " + category.Label() + " is"
}

// alternatePrompt picks the retry prompt for an unusable answer to prompt.
// randn returns an integer in [0,n).
func (v *Vocabulary) alternatePrompt(prompt string, randn func(n int) int) string {
	lower := strings.ToLower(prompt)
	if len(v.SpatialAltPrompts) > 0 && firstContained(lower, spatialPromptCues) != "" {
		return v.SpatialAltPrompts[randn(len(v.SpatialAltPrompts))]
	}
	return describePrompt
}
