package spacelabel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// FolderResult is the outcome of labeling one image folder.
type FolderResult struct {
	Folder   string
	Images   int // images found in the folder
	Used     int // images that contributed keywords
	Keywords *FolderKeywords
	Hints    ContextHints
	Label    Label
	Renamed  []string // audio files written, empty in dry-run mode
}

// Run labels every image folder under root, one folder at a time.
//
// Labeled copies from a previous run are removed first. Finding no images is
// not an error. Problems with a single image are logged and the image is
// skipped, but any folder-level failure stops the run and is returned wrapped
// in ErrFolderFailed, together with the results of the folders already done.
func (cfg *Config) Run(ctx context.Context, root string) ([]FolderResult, error) {
	cfg.defaults()
	if cfg.Captioner == nil {
		return nil, ErrNoCaptioner
	}

	if !cfg.DryRun {
		cfg.CleanupLabelled(root)
	}

	folders, err := cfg.FindImages(root)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, f := range folders {
		total += len(f.Images)
	}
	if total == 0 {
		slog.Warn("spacelabel: no images found", "root", root)
		return nil, nil
	}
	slog.Info("spacelabel: found images", "root", root, "images", total, "folders", len(folders))

	results := make([]FolderResult, 0, len(folders))
	for i, f := range folders {
		slog.Info("spacelabel: processing folder", "folder", f.Path, "n", i+1, "of", len(folders), "images", len(f.Images))

		res, err := cfg.ProcessFolder(ctx, f)
		if err != nil {
			slog.Error("spacelabel: folder failed", "folder", f.Path, "error", err.Error())
			return results, fmt.Errorf("%w: %s: %w", ErrFolderFailed, f.Path, err)
		}
		results = append(results, res)
		if cfg.OnLabel != nil {
			cfg.OnLabel(res)
		}
	}
	return results, nil
}

// ProcessFolder extracts keywords from every image of folder, reduces them to
// a label and, unless cfg.DryRun is set, applies the label to the neighbouring
// audio directories.
func (cfg *Config) ProcessFolder(ctx context.Context, folder ImageFolder) (FolderResult, error) {
	cfg.defaults()
	v := cfg.Vocabulary

	res := FolderResult{
		Folder:   folder.Path,
		Images:   len(folder.Images),
		Keywords: NewFolderKeywords(),
	}

	var dedup *dedupFilter
	if cfg.Dedup {
		dedup = &dedupFilter{}
	}

	for _, path := range folder.Images {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if ks := cfg.processImage(ctx, path, dedup); ks != nil {
			res.Keywords.AddImage(ks)
			res.Used++
		}
	}

	for _, c := range Categories {
		slog.Debug("spacelabel: folder keywords", "folder", folder.Path, "category", c, "terms", res.Keywords.Observed[c])
	}
	if res.Keywords.Observed.Len() == 0 {
		slog.Warn("spacelabel: no keywords extracted from images", "folder", folder.Path, "images", res.Images)
	}

	res.Hints = v.AnalyzeFolderContext(folder.Path)
	res.Label = v.BuildLabel(res.Keywords, res.Hints, cfg.MinKeywords, cfg.MaxKeywords)
	slog.Info("spacelabel: folder label", "folder", folder.Path, "label", res.Label.Text, "used", res.Used)

	if cfg.DryRun {
		return res, nil
	}

	renamed, err := cfg.ApplyLabel(folder.Path, res.Label)
	res.Renamed = renamed
	if err != nil {
		return res, err
	}
	return res, nil
}

// processImage returns the keywords of one image, or nil when the image is
// skipped. Every failure is logged here and recovered, panics included.
func (cfg *Config) processImage(ctx context.Context, path string, dedup *dedupFilter) (ks KeywordSet) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("spacelabel: panic while processing image", "path", path, "panic", r)
			if cfg.OnPanic != nil {
				cfg.OnPanic("processImage", r)
			}
			ks = nil
		}
	}()

	img, err := cfg.LoadImage(path)
	if err != nil {
		slog.Warn("spacelabel: skipping unreadable image", "path", path, "error", err.Error())
		return nil
	}
	if img.DecodeErr != nil {
		slog.Warn("spacelabel: skipping undecodable image", "path", path, "error", img.DecodeErr.Error())
		return nil
	}

	if cfg.isDiagram(img) {
		return nil
	}
	if !cfg.WideEnough(img) {
		slog.Info("spacelabel: skipping narrow image", "path", path)
		return nil
	}
	if dedup != nil {
		if first := dedup.duplicateOf(path, img.Image); first != "" {
			slog.Info("spacelabel: skipping duplicate image", "path", path, "duplicate_of", first)
			return nil
		}
	}

	ks, err = cfg.ExtractImageKeywords(ctx, img)
	switch {
	case errors.Is(err, ErrDiagram):
		slog.Info("spacelabel: skipping diagram", "path", path, "reason", err.Error())
		return nil
	case err != nil:
		slog.Warn("spacelabel: keyword extraction failed", "path", path, "error", err.Error())
		return nil
	}
	return ks
}
