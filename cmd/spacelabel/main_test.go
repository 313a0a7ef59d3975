package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    options
		wantErr string
	}{
		{name: "defaults", opts: options{minKeywords: 5, maxKeywords: 15}},
		{name: "equal bounds", opts: options{minKeywords: 3, maxKeywords: 3}},
		{name: "zero minimum", opts: options{minKeywords: 0, maxKeywords: 15}, wantErr: "--min_keywords"},
		{name: "max below min", opts: options{minKeywords: 6, maxKeywords: 4}, wantErr: "--max_keywords"},
		{name: "negative width", opts: options{minKeywords: 5, maxKeywords: 15, minWidth: -1}, wantErr: "--min-width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.opts.validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, want it to mention %s", err, tc.wantErr)
			}
		})
	}
}

func TestRootCmd_FlagErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "root dir required", args: []string{}, wantErr: "root_dir"},
		{name: "bad minimum", args: []string{"--root_dir", "/x", "--min_keywords", "0"}, wantErr: "--min_keywords"},
		{name: "unknown flag", args: []string{"--root_dir", "/x", "--colour"}, wantErr: "colour"},
		{name: "positional args rejected", args: []string{"--root_dir", "/x", "extra"}, wantErr: "extra"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cmd := newRootCmd()
			cmd.SetArgs(tc.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			err := cmd.Execute()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Execute error = %v, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestRootCmd_FlagDefaults(t *testing.T) {
	t.Parallel()

	f := newRootCmd().Flags()
	for name, want := range map[string]string{
		"min_keywords": "5",
		"max_keywords": "15",
		"metadata":     "false",
		"dedup":        "false",
		"dry-run":      "false",
		"min-width":    "0",
	} {
		fl := f.Lookup(name)
		if fl == nil {
			t.Errorf("flag --%s missing", name)
			continue
		}
		if fl.DefValue != want {
			t.Errorf("--%s default = %q, want %q", name, fl.DefValue, want)
		}
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("SPACELABEL_TEST_MODEL", "bakllava")

	if got := envOr("SPACELABEL_TEST_MODEL", "llava"); got != "bakllava" {
		t.Errorf("envOr = %q, want value from the environment", got)
	}
	if got := envOr("SPACELABEL_TEST_UNSET", "llava"); got != "llava" {
		t.Errorf("envOr = %q, want fallback", got)
	}
}

// writePhoto writes a PNG whose grey levels are spread evenly, so it is not
// mistaken for a drawing.
func writePhoto(t *testing.T, path string) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y*64) % 256)})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRun_AgainstOllamaStub(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		text := req.Prompt + " a large church with stone walls and a stone vault, very reverberant"
		_ = json.NewEncoder(w).Encode(map[string]any{"response": text, "done": true})
	}))
	defer srv.Close()

	root := t.TempDir()
	writePhoto(t, filepath.Join(root, "site", "photos", "a.png"))
	if err := os.MkdirAll(filepath.Join(root, "site", "stereo"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "site", "stereo", "take1.wav"), []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := &options{
		rootDir:     root,
		minKeywords: 5,
		maxKeywords: 15,
		ollamaURL:   srv.URL,
		model:       "llava",
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := run(ctx, opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(root, "site", "stereoLabelled"))
	if err != nil {
		t.Fatalf("labeled copy missing: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d labeled files, want 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "stone_") || !strings.HasSuffix(name, ".wav") {
		t.Errorf("labeled file = %q, want a stone_… label with the original extension", name)
	}
	if _, err := os.Stat(filepath.Join(root, "site", "stereo", "take1.wav")); err != nil {
		t.Errorf("original file should be untouched: %v", err)
	}
}
