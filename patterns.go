package spacelabel

import (
	"path/filepath"
	"strings"
)

// planFilenameKeyword returns the first plan keyword contained in the
// lowercased base name of path, or "".
func (v *Vocabulary) planFilenameKeyword(path string) string {
	return firstContained(strings.ToLower(filepath.Base(path)), v.PlanFilenameKeywords)
}

// planCaptionKeyword returns the first plan keyword contained in the
// lowercased caption, or "".
func (v *Vocabulary) planCaptionKeyword(caption string) string {
	return firstContained(strings.ToLower(caption), v.PlanCaptionKeywords)
}

func firstContained(lower string, patterns []string) string {
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return p
		}
	}
	return ""
}
