package spacelabel

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"
)

// A near-flat greyscale histogram is typical of line drawings and blueprints.
const (
	dominantBins       = 3
	histogramDominance = 0.8
)

// DiagramSignal is a single piece of evidence that an image is a technical
// drawing rather than a photograph.
type DiagramSignal struct {
	Source string // signal source: "histogram", "filename", "caption"
	Detail string // human-readable detail
}

// DiagramAssessment combines the diagram signals of one image.
type DiagramAssessment struct {
	IsDiagram bool
	Signals   []DiagramSignal // contributing evidence (never nil, may be empty)
}

// AssessDiagram classifies img, read from path, as a diagram when its three
// most frequent grey levels cover more than 80% of the pixels or when the file
// name contains a plan keyword.
func (v *Vocabulary) AssessDiagram(img image.Image, path string) DiagramAssessment {
	signals := make([]DiagramSignal, 0, 2) //nolint:mnd // histogram + filename

	if share := dominantShare(img); share > histogramDominance {
		signals = append(signals, DiagramSignal{
			Source: "histogram",
			Detail: fmt.Sprintf("top %d grey levels cover %.0f%% of pixels", dominantBins, share*100), //nolint:mnd // percent
		})
	}

	if kw := v.planFilenameKeyword(path); kw != "" {
		signals = append(signals, DiagramSignal{
			Source: "filename",
			Detail: "file name contains " + kw,
		})
	}

	return DiagramAssessment{
		IsDiagram: len(signals) > 0,
		Signals:   signals,
	}
}

// isDiagram assesses a loaded image and logs the signals of a diagram.
// Images that failed to decode are never diagrams.
func (cfg *Config) isDiagram(img *ImageData) bool {
	if img == nil || img.Image == nil {
		return false
	}
	a := cfg.Vocabulary.AssessDiagram(img.Image, img.Path)
	if a.IsDiagram {
		slog.Info("spacelabel: skipping diagram", "path", img.Path, "signals", a.Signals)
	}
	return a.IsDiagram
}

// dominantShare returns the fraction of pixels that fall into the three most
// populated bins of img's 256-level greyscale histogram.
func dominantShare(img image.Image) float64 {
	if img == nil {
		return 0
	}
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}

	hist := make([]int, 256) //nolint:mnd // 8-bit grey levels
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g, _ := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			hist[g.Y]++
		}
	}

	slices.SortFunc(hist, func(a, b int) int { return b - a })
	top := 0
	for _, n := range hist[:dominantBins] {
		top += n
	}
	return float64(top) / float64(total)
}
