package spacelabel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
)

// NoDescription is returned by AcquireCaption when the captioner fails twice.
const NoDescription = "No description available"

// Generation budgets, in tokens.
const (
	promptedBudget = 30
	retryBudget    = 50
	errorBudget    = 40
	quickBudget    = 30
	generalBudget  = 50
)

// Caption cleaning thresholds, in characters.
const (
	fragmentWindow  = 60
	separatorWindow = 40
	genericMaxLen   = 30
	minCaptionLen   = 10
	minUsableLen    = 5
)

type captionState int

const (
	captionInitial captionState = iota
	captionRetrying
	captionFallback
	captionDone
)

func (s captionState) String() string {
	switch s {
	case captionInitial:
		return "initial"
	case captionRetrying:
		return "retrying"
	case captionFallback:
		return "fallback"
	case captionDone:
		return "done"
	default:
		return "unknown"
	}
}

// AcquireCaption asks the captioner about img with prompt and returns the
// answer without the echoed prompt. It never fails.
//
// A cleaned answer shorter than 10 characters is retried once with an
// alternate prompt. If the final answer is still shorter than 5 characters a
// plain caption is returned as is. A captioner error switches to a plain
// caption; if that fails too, NoDescription is returned.
func (cfg *Config) AcquireCaption(ctx context.Context, img ImageInput, prompt string) string {
	cfg.defaults()
	v := cfg.Vocabulary

	state := captionInitial
	var text string
	for {
		switch state {
		case captionInitial, captionRetrying:
			p, budget := prompt, promptedBudget
			if state == captionRetrying {
				p, budget = v.alternatePrompt(prompt, cfg.Rand), retryBudget
			}

			raw, err := cfg.caption(ctx, img, p, budget)
			if err != nil {
				return cfg.captionAfterError(ctx, img, err)
			}
			text = v.CleanCaption(raw, p)

			next := captionDone
			switch {
			case state == captionInitial && captionLen(text) < minCaptionLen:
				next = captionRetrying
			default:
				text = strings.TrimLeftFunc(text, isLeadingJunk)
				if captionLen(text) < minUsableLen {
					next = captionFallback
				}
			}
			slog.Debug("spacelabel: caption", "path", img.Path, "state", state, "prompt", p, "text", text, "next", next)
			state = next

		case captionFallback:
			raw, err := cfg.caption(ctx, img, "", retryBudget)
			if err != nil {
				return cfg.captionAfterError(ctx, img, err)
			}
			return raw

		case captionDone:
			return text
		}
	}
}

// CleanCaption strips an echoed prompt from the front of raw. The first
// matching rule wins: raw starts with prompt (case-insensitive); a known
// question fragment occurs in the first 60 characters, and everything up to
// its end is cut; a "?" or ":" occurs in the first 40 characters, and
// everything up to the later of the two is cut. Short non-answers such as
// "i don't know" come back empty.
func (v *Vocabulary) CleanCaption(raw, prompt string) string {
	lower := strings.ToLower(raw)
	base := raw
	if len(lower) != len(raw) {
		base = lower
	}

	cleaned := strings.TrimSpace(base)
	lowerPrompt := strings.ToLower(prompt)

	switch {
	case prompt == "":
	case strings.HasPrefix(lower, lowerPrompt):
		cleaned = strings.TrimSpace(base[len(lowerPrompt):])
	case v.fragmentEnd(lower) >= 0:
		if end := v.fragmentEnd(lower); end < len(base) {
			cleaned = strings.TrimSpace(base[end:])
		}
	case strings.ContainsAny(head(lower, separatorWindow), "?:"):
		q := max(strings.Index(lower, "?"), strings.Index(lower, ":"))
		if q > 0 {
			cleaned = strings.TrimSpace(base[q+1:])
		}
	}

	if captionLen(cleaned) < genericMaxLen {
		cl := strings.ToLower(cleaned)
		for _, g := range v.GenericResponses {
			if strings.Contains(cl, g) {
				return ""
			}
		}
	}
	return cleaned
}

// fragmentEnd returns the end offset of the first listed question fragment
// found in the first 60 characters of lower, or -1.
func (v *Vocabulary) fragmentEnd(lower string) int {
	window := head(lower, fragmentWindow)
	for _, f := range v.QuestionFragments {
		if strings.Contains(window, f) {
			return strings.Index(lower, f) + len(f)
		}
	}
	return -1
}

// caption calls the captioner, consulting cfg.Cache first when set.
func (cfg *Config) caption(ctx context.Context, img ImageInput, prompt string, budget int) (string, error) {
	if cfg.Captioner == nil {
		return "", ErrNoCaptioner
	}
	if cfg.Cache == nil {
		return cfg.Captioner.Caption(ctx, img, prompt, budget)
	}

	cacheKey := cfg.Cache.Key("caption", fmt.Sprintf("%s|%d|%s", digest(img.Data), budget, prompt))
	var cached string
	if cfg.Cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}
	text, err := cfg.Captioner.Caption(ctx, img, prompt, budget)
	if err != nil {
		return "", err
	}
	cfg.Cache.Set(ctx, cacheKey, text)
	return text, nil
}

// captionAfterError falls back to a plain caption after a captioner error.
func (cfg *Config) captionAfterError(ctx context.Context, img ImageInput, cause error) string {
	slog.Debug("spacelabel: captioner error", "path", img.Path, "error", cause.Error())
	text, err := cfg.caption(ctx, img, "", errorBudget)
	if err != nil {
		slog.Warn("spacelabel: captioner unavailable", "path", img.Path, "error", err.Error())
		return NoDescription
	}
	return text
}

func isLeadingJunk(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(".,:;", r)
}

// captionLen counts characters, not bytes.
func captionLen(s string) int {
	return len([]rune(s))
}

// head returns at most the first n bytes of s.
func head(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
