package spacelabel

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Audio directories that sit next to an image folder, and the suffix of their
// labeled copies.
const (
	BFormatDir     = "BFormatToStereo"
	StereoDir      = "stereo"
	LabelledSuffix = "Labelled"
)

// AudioDirs are copied and relabeled, in this order.
var AudioDirs = []string{BFormatDir, StereoDir}

// ErrDestinationExists is returned when a labeled copy already exists.
var ErrDestinationExists = errors.New("destination exists")

// CleanupLabelled removes the labeled copies left by a previous run: for every
// audio directory under root, its "<name>Labelled" sibling. Failures are
// logged and skipped. It returns the directories removed.
func (cfg *Config) CleanupLabelled(root string) []string {
	cfg.defaults()

	var stale []string
	walkErr := afero.Walk(cfg.Fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are not ours to clean
		}
		if !info.IsDir() || !slices.Contains(AudioDirs, info.Name()) {
			return nil
		}
		labelled := path + LabelledSuffix
		if ok, _ := afero.DirExists(cfg.Fs, labelled); ok && !slices.Contains(stale, labelled) {
			stale = append(stale, labelled)
		}
		return nil
	})
	if walkErr != nil {
		slog.Warn("spacelabel: cleanup walk failed", "root", root, "error", walkErr.Error())
	}

	removed := make([]string, 0, len(stale))
	for _, dir := range stale {
		if err := cfg.Fs.RemoveAll(dir); err != nil {
			slog.Warn("spacelabel: cleanup failed", "dir", dir, "error", err.Error())
			continue
		}
		slog.Info("spacelabel: removed previous output", "dir", dir)
		removed = append(removed, dir)
	}
	return removed
}

// ApplyLabel copies the audio directories next to folder to their "Labelled"
// siblings and renames every file directly inside each copy to
// "<label><ext>", adding "_1", "_2", ... on collision. It returns the renamed
// paths. Any failure is returned; the copy may be left partially renamed.
func (cfg *Config) ApplyLabel(folder string, label Label) ([]string, error) {
	cfg.defaults()

	parent := filepath.Dir(folder)
	var renamed []string
	for _, name := range AudioDirs {
		src := filepath.Join(parent, name)
		if ok, err := afero.DirExists(cfg.Fs, src); err != nil {
			return renamed, fmt.Errorf("stat %s: %w", src, err)
		} else if !ok {
			continue
		}

		dst := src + LabelledSuffix
		if err := copyTree(cfg.Fs, src, dst); err != nil {
			return renamed, fmt.Errorf("copy %s to %s: %w", src, dst, err)
		}

		files, err := renameFiles(cfg.Fs, dst, label.Text)
		renamed = append(renamed, files...)
		if err != nil {
			return renamed, fmt.Errorf("rename in %s: %w", dst, err)
		}
		slog.Info("spacelabel: labeled audio", "dir", dst, "label", label.Text, "files", len(files))
	}
	return renamed, nil
}

// copyTree recursively copies the directory src to dst, which must not exist.
func copyTree(fsys afero.Fs, src, dst string) error {
	if _, err := fsys.Stat(dst); err == nil {
		return fmt.Errorf("%s: %w", dst, ErrDestinationExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return afero.Walk(fsys, src, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		switch {
		case info.IsDir():
			return fsys.MkdirAll(target, info.Mode().Perm()|0o700) //nolint:mnd // owner must be able to write into the copy
		case info.Mode().IsRegular():
			return copyFile(fsys, path, target, info.Mode().Perm())
		default:
			return nil
		}
	})
}

func copyFile(fsys afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// renameFiles renames every regular file directly inside dir to stem plus its
// extension, in name order.
func renameFiles(fsys afero.Fs, dir, stem string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var renamed []string
	for _, e := range entries {
		if !e.Mode().IsRegular() {
			continue
		}
		oldPath := filepath.Join(dir, e.Name())
		newPath, err := freeName(fsys, dir, stem, filepath.Ext(e.Name()), oldPath)
		if err != nil {
			return renamed, err
		}
		if newPath == oldPath {
			renamed = append(renamed, newPath)
			continue
		}
		if err := fsys.Rename(oldPath, newPath); err != nil {
			return renamed, err
		}
		renamed = append(renamed, newPath)
	}
	return renamed, nil
}

// freeName returns dir/stem+ext, or dir/stem_N+ext with the smallest N >= 1
// that is free. A name equal to current counts as free.
func freeName(fsys afero.Fs, dir, stem, ext, current string) (string, error) {
	candidate := filepath.Join(dir, stem+ext)
	for n := 1; ; n++ {
		if candidate == current {
			return candidate, nil
		}
		exists, err := afero.Exists(fsys, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = filepath.Join(dir, stem+"_"+strconv.Itoa(n)+ext)
	}
}

// labelledName reports whether name is a labeled copy of an audio directory.
func labelledName(name string) bool {
	return strings.HasSuffix(name, LabelledSuffix) && slices.Contains(AudioDirs, strings.TrimSuffix(name, LabelledSuffix))
}
