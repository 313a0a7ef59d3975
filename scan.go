package spacelabel

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// ImageExtensions are the file extensions scanned for, matched
// case-insensitively.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// ImageFolder is a directory and the images directly inside it.
type ImageFolder struct {
	Path   string
	Images []string
}

// FindImages walks root on cfg.Fs and groups every image by the directory
// holding it. Folders come in walk (lexical) order. Labeled audio copies are
// not descended into. Entries below root that cannot be read are logged and
// skipped; only an unreadable root is an error.
func (cfg *Config) FindImages(root string) ([]ImageFolder, error) {
	cfg.defaults()

	var folders []ImageFolder
	index := make(map[string]int)

	err := afero.Walk(cfg.Fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			slog.Warn("spacelabel: skipping unreadable path", "path", path, "error", err.Error())
			return filepath.SkipDir
		}
		if info.IsDir() {
			if path != root && labelledName(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsImageFile(path) {
			return nil
		}
		dir := filepath.Dir(path)
		i, ok := index[dir]
		if !ok {
			i = len(folders)
			index[dir] = i
			folders = append(folders, ImageFolder{Path: dir})
		}
		folders[i].Images = append(folders[i].Images, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return folders, nil
}

// IsImageFile reports whether path has one of ImageExtensions.
func IsImageFile(path string) bool {
	return slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(path)))
}
