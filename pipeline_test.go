package spacelabel

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// churchCaptioner describes every image as the same stone church.
func churchCaptioner() *mockCaptioner {
	return &mockCaptioner{respond: func(_ ImageInput, prompt string, _ int) (string, error) {
		if prompt == "" {
			return "a large church with stone walls and wooden pews", nil
		}
		return prompt + " a large church with stone walls and wooden pews and a dome", nil
	}}
}

// churchSite lays out one room: photos next to impulse responses.
func churchSite(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	photo := makePNG(photoLike())
	writeFile(t, fs, "/data/church-hall/photos/1.png", photo)
	writeFile(t, fs, "/data/church-hall/photos/2.png", photo)
	writeFile(t, fs, "/data/church-hall/photos/broken.jpg", []byte("truncated"))
	writeFile(t, fs, "/data/church-hall/photos/floor_plan.png", photo)
	writeFile(t, fs, "/data/church-hall/BFormatToStereo/ir1.wav", []byte("ir1"))
	writeFile(t, fs, "/data/church-hall/BFormatToStereo/ir2.wav", []byte("ir2"))
	writeFile(t, fs, "/data/church-hall/BFormatToStereoLabelled/stale.wav", []byte("old"))
	return fs
}

const churchLabel = "stone_wooden_church_hall_dome_reverberant_large"

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	fs := churchSite(t)
	mc := churchCaptioner()
	var labeled []FolderResult
	cfg := &Config{
		Captioner: mc,
		Fs:        fs,
		OnLabel:   func(r FolderResult) { labeled = append(labeled, r) },
	}

	results, err := cfg.Run(context.Background(), "/data")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || len(labeled) != 1 {
		t.Fatalf("got %d results, %d callbacks; want 1 each", len(results), len(labeled))
	}

	res := results[0]
	if res.Folder != "/data/church-hall/photos" {
		t.Errorf("Folder = %q", res.Folder)
	}
	if res.Images != 4 || res.Used != 2 {
		t.Errorf("Images = %d, Used = %d; want 4 and 2", res.Images, res.Used)
	}
	if res.Label.Text != churchLabel {
		t.Errorf("label = %q, want %q", res.Label.Text, churchLabel)
	}

	wantRenamed := []string{
		"/data/church-hall/BFormatToStereoLabelled/" + churchLabel + ".wav",
		"/data/church-hall/BFormatToStereoLabelled/" + churchLabel + "_1.wav",
	}
	if !slices.Equal(res.Renamed, wantRenamed) {
		t.Errorf("Renamed = %v, want %v", res.Renamed, wantRenamed)
	}
	assertExists(t, fs, "/data/church-hall/BFormatToStereoLabelled/stale.wav", false)
	assertExists(t, fs, "/data/church-hall/BFormatToStereo/ir1.wav", true)

	for _, c := range mc.calls {
		if strings.HasSuffix(c.Path, "floor_plan.png") || strings.HasSuffix(c.Path, "broken.jpg") {
			t.Errorf("skipped image %s reached the captioner", c.Path)
		}
	}
}

func TestRun_DryRun(t *testing.T) {
	t.Parallel()

	fs := churchSite(t)
	cfg := &Config{Captioner: churchCaptioner(), Fs: fs, DryRun: true, Dedup: true}

	results, err := cfg.Run(context.Background(), "/data")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	// 2.png is a copy of 1.png.
	if results[0].Used != 1 {
		t.Errorf("Used = %d, want 1 with dedup", results[0].Used)
	}
	if results[0].Label.Text != churchLabel {
		t.Errorf("label = %q, want %q", results[0].Label.Text, churchLabel)
	}
	if len(results[0].Renamed) != 0 {
		t.Errorf("Renamed = %v, want none in dry-run mode", results[0].Renamed)
	}
	assertExists(t, fs, "/data/church-hall/BFormatToStereoLabelled/stale.wav", true)
	assertExists(t, fs, "/data/church-hall/BFormatToStereoLabelled/"+churchLabel+".wav", false)
}

func TestRun_NoImages(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/data/empty/readme.txt", []byte("x"))
	mc := churchCaptioner()
	cfg := &Config{Captioner: mc, Fs: fs}

	results, err := cfg.Run(context.Background(), "/data")
	if err != nil || results != nil {
		t.Errorf("Run = %v, %v; want nil, nil", results, err)
	}
	if len(mc.calls) != 0 {
		t.Error("captioner should not be called without images")
	}
}

func TestRun_NoCaptioner(t *testing.T) {
	t.Parallel()

	cfg := &Config{Fs: afero.NewMemMapFs()}
	if _, err := cfg.Run(context.Background(), "/data"); !errors.Is(err, ErrNoCaptioner) {
		t.Errorf("error = %v, want ErrNoCaptioner", err)
	}
}

func TestRun_MissingRoot(t *testing.T) {
	t.Parallel()

	cfg := &Config{Captioner: churchCaptioner(), Fs: afero.NewMemMapFs()}
	if _, err := cfg.Run(context.Background(), "/nowhere"); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestRun_FolderFailureIsFatal(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	photo := makePNG(photoLike())
	// Two image folders share the parent, and with it the stereo directory.
	writeFile(t, fs, "/data/room/a/1.png", photo)
	writeFile(t, fs, "/data/room/b/2.png", photo)
	writeFile(t, fs, "/data/room/stereo/x.wav", []byte("x"))

	cfg := &Config{Captioner: churchCaptioner(), Fs: fs}
	results, err := cfg.Run(context.Background(), "/data")
	if !errors.Is(err, ErrFolderFailed) {
		t.Fatalf("error = %v, want ErrFolderFailed", err)
	}
	if !errors.Is(err, ErrDestinationExists) {
		t.Errorf("error = %v, want the cause to be kept", err)
	}
	if len(results) != 1 || results[0].Folder != "/data/room/a" {
		t.Errorf("results = %+v, want the first folder only", results)
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	fs := churchSite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &Config{Captioner: churchCaptioner(), Fs: fs, DryRun: true}
	_, err := cfg.Run(ctx, "/data")
	if !errors.Is(err, ErrFolderFailed) || !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want a canceled folder failure", err)
	}
}

func TestProcessFolder_SkipsFailingImages(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	photo := makePNG(photoLike())
	writeFile(t, fs, "/irs/nave/photos/boom.png", photo)
	writeFile(t, fs, "/irs/nave/photos/down.png", photo)
	writeFile(t, fs, "/irs/nave/photos/ok.png", photo)

	church := churchCaptioner()
	mc := &mockCaptioner{respond: func(img ImageInput, prompt string, n int) (string, error) {
		switch {
		case strings.HasSuffix(img.Path, "boom.png"):
			panic("captioner exploded")
		case strings.HasSuffix(img.Path, "down.png"):
			return "", errors.New("connection refused")
		}
		return church.respond(img, prompt, n)
	}}

	var panics []string
	cfg := &Config{
		Captioner: mc,
		Fs:        fs,
		DryRun:    true,
		OnPanic:   func(tag string, _ any) { panics = append(panics, tag) },
	}

	folder := ImageFolder{
		Path:   "/irs/nave/photos",
		Images: []string{"/irs/nave/photos/boom.png", "/irs/nave/photos/down.png", "/irs/nave/photos/ok.png"},
	}
	res, err := cfg.ProcessFolder(context.Background(), folder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Used != 1 {
		t.Errorf("Used = %d, want 1", res.Used)
	}
	if !slices.Equal(panics, []string{"processImage"}) {
		t.Errorf("OnPanic calls = %v, want one for processImage", panics)
	}
	if !slices.Contains(res.Label.Terms, "church") {
		t.Errorf("label %q should come from the healthy image", res.Label.Text)
	}
}

func TestProcessFolder_NarrowImagesSkipped(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/irs/cellar/photos/1.png", makePNG(photoLike()))

	mc := churchCaptioner()
	cfg := &Config{Captioner: mc, Fs: fs, DryRun: true, MinImageWidth: 880}

	res, err := cfg.ProcessFolder(context.Background(), ImageFolder{
		Path:   "/irs/cellar/photos",
		Images: []string{"/irs/cellar/photos/1.png"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Used != 0 || len(mc.calls) != 0 {
		t.Errorf("Used = %d, calls = %d; want the narrow image skipped", res.Used, len(mc.calls))
	}
	// Folder context alone still yields a label.
	if !slices.Contains(res.Label.Terms, "cellar") {
		t.Errorf("label = %q, want the folder hint", res.Label.Text)
	}
}

func TestProcessFolder_RepeatsInOneImageDoNotOutvoteOthers(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	photo := makePNG(photoLike())
	images := []string{"/srv/ab/photos/1.png", "/srv/ab/photos/2.png", "/srv/ab/photos/3.png"}
	for _, p := range images {
		writeFile(t, fs, p, photo)
	}

	mc := &mockCaptioner{respond: func(img ImageInput, _ string, _ int) (string, error) {
		if strings.HasSuffix(img.Path, "1.png") {
			return "wood paneling, wood beams and wood trim everywhere", nil
		}
		return "wooden paneling everywhere in sight", nil
	}}
	cfg := &Config{Captioner: mc, Fs: fs, DryRun: true}

	res, err := cfg.ProcessFolder(context.Background(), ImageFolder{Path: "/srv/ab/photos", Images: images})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Keywords.ImageCount("wood") != 1 || res.Keywords.ImageCount("wooden") != 2 {
		t.Fatalf("image counts = wood:%d wooden:%d, want 1 and 2",
			res.Keywords.ImageCount("wood"), res.Keywords.ImageCount("wooden"))
	}
	if !slices.Contains(res.Label.Terms, "wooden") || slices.Contains(res.Label.Terms, "wood") {
		t.Errorf("label = %q, want wooden, seen in two images, over wood", res.Label.Text)
	}
}
