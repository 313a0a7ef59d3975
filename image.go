package spacelabel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrDiagram is returned by ExtractImageKeywords when the captioner describes
// the image as a plan or diagram.
var ErrDiagram = errors.New("spacelabel: image is a diagram")

// maxProbeAttempts bounds the prompts tried for a category that the first
// pass left empty.
const maxProbeAttempts = 10

// ExtractImageKeywords captions img several ways and returns the vocabulary
// terms found for each category.
//
// A quick plain caption first screens out plans and diagrams. A general
// caption and one answer per category prompt are then combined and scanned for
// every category; categories left empty are probed with up to 10 more prompts
// and finally one simple prompt.
func (cfg *Config) ExtractImageKeywords(ctx context.Context, img *ImageData) (KeywordSet, error) {
	cfg.defaults()
	if cfg.Captioner == nil {
		return nil, ErrNoCaptioner
	}
	v := cfg.Vocabulary
	in := img.Input()

	quick, err := cfg.caption(ctx, in, "", quickBudget)
	if err != nil {
		return nil, fmt.Errorf("quick caption: %w", err)
	}
	if kw := v.planCaptionKeyword(quick); kw != "" {
		return nil, fmt.Errorf("%w: caption mentions %q", ErrDiagram, kw)
	}

	general, err := cfg.caption(ctx, in, "", generalBudget)
	if err != nil {
		return nil, fmt.Errorf("general caption: %w", err)
	}
	slog.Debug("spacelabel: general caption", "path", img.Path, "caption", general)

	texts := []string{general}
	for _, c := range Categories {
		if len(v.Prompts[c]) == 0 {
			continue
		}
		if text := cfg.AcquireCaption(ctx, in, v.Prompts[c][0]); text != "" {
			texts = append(texts, text)
		}
	}
	if cfg.EmbeddedMetadata {
		if desc := ExtractDescription(img.Data).Text(); desc != "" {
			slog.Debug("spacelabel: embedded description", "path", img.Path, "text", desc)
			texts = append(texts, desc)
		}
	}
	full := strings.Join(texts, " ")

	ks := NewKeywordSet()
	for _, c := range Categories {
		found := v.extractCategory(full, c)
		if len(found) == 0 {
			found = cfg.probeCategory(ctx, in, c)
		}
		if len(found) > 0 {
			ks[c] = found
		}
		slog.Debug("spacelabel: image keywords", "path", img.Path, "category", c, "terms", found)
	}
	return ks, nil
}

// extractCategory runs the keyword extractor, falling back to the spatial
// extractor for an empty spatial result.
func (v *Vocabulary) extractCategory(text string, category Category) []string {
	found := v.ExtractKeywords(text, category)
	if len(found) == 0 && category == CategorySpatial {
		found = v.ExtractSpatialKeywords(text)
	}
	return found
}

// probeCategory asks category-specific questions until one answer yields
// terms for category.
func (cfg *Config) probeCategory(ctx context.Context, in ImageInput, category Category) []string {
	v := cfg.Vocabulary
	for attempt := range maxProbeAttempts {
		text := cfg.AcquireCaption(ctx, in, v.promptFor(category, attempt))
		if found := v.extractCategory(text, category); len(found) > 0 {
			return found
		}
	}

	slog.Debug("spacelabel: category still empty", "path", in.Path, "category", category, "attempts", maxProbeAttempts)
	return v.extractCategory(cfg.AcquireCaption(ctx, in, simplePrompt(category)), category)
}
