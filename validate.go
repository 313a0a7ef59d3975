package spacelabel

import (
	"bytes"
	"image"
	"log/slog"
)

// WideEnough reports whether img is at least cfg.MinImageWidth pixels wide.
// A zero MinImageWidth accepts everything, and so does an image whose
// dimensions cannot be read.
func (cfg *Config) WideEnough(img *ImageData) bool {
	if cfg.MinImageWidth <= 0 {
		return true
	}

	var width int
	if img.Image != nil {
		width = img.Image.Bounds().Dx()
	} else {
		imgCfg, _, err := image.DecodeConfig(bytes.NewReader(img.Data))
		if err != nil {
			// Unknown dimensions are accepted.
			return true
		}
		width = imgCfg.Width
	}

	if width < cfg.MinImageWidth {
		slog.Debug("spacelabel: too narrow", "path", img.Path, "width", width, "min", cfg.MinImageWidth)
		return false
	}
	return true
}
