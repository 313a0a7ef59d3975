// Command spacelabel labels impulse-response recordings with descriptors of
// the room they were captured in, inferred from photographs of that room.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go-spacelabel"
)

const captionCacheTTL = time.Hour

type options struct {
	rootDir     string
	minKeywords int
	maxKeywords int

	ollamaURL  string
	model      string
	vocabulary string
	dedup      bool
	metadata   bool
	minWidth   int
	dryRun     bool
	verbose    bool
}

func main() {
	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("spacelabel: run failed", "error", err.Error())
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "spacelabel --root_dir DIR",
		Short: "Label impulse responses from photos of the room",
		Long: `Scan DIR recursively for room photographs (.jpg .jpeg .png .bmp), caption
them with a vision model, and reduce the captions of each folder to a label of
material, place, architecture, acoustic and spatial terms.

For every image folder, the sibling BFormatToStereo and stereo directories are
copied to BFormatToStereoLabelled and stereoLabelled and each file in the
copies is renamed to <label><ext>. Labeled copies from earlier runs are removed
first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.rootDir, "root_dir", "", "root directory searched for images (required)")
	f.IntVar(&opts.minKeywords, "min_keywords", spacelabel.DefaultMinKeywords, "minimum number of terms per label")
	f.IntVar(&opts.maxKeywords, "max_keywords", spacelabel.DefaultMaxKeywords, "maximum number of terms per label")
	f.StringVar(&opts.ollamaURL, "ollama-url", envOr("SPACELABEL_OLLAMA_URL", spacelabel.DefaultOllamaURL), "Ollama base URL")
	f.StringVar(&opts.model, "model", envOr("SPACELABEL_MODEL", spacelabel.DefaultOllamaModel), "Ollama vision model")
	f.StringVar(&opts.vocabulary, "vocabulary", "", "YAML file overriding the built-in vocabulary")
	f.BoolVar(&opts.dedup, "dedup", false, "skip near-identical images within a folder")
	f.BoolVar(&opts.metadata, "metadata", false, "add embedded EXIF/IPTC/XMP descriptions to captions")
	f.IntVar(&opts.minWidth, "min-width", 0, "skip images narrower than this many pixels (0 = no limit)")
	f.BoolVar(&opts.dryRun, "dry-run", false, "compute labels without copying or renaming files")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	_ = cmd.MarkFlagRequired("root_dir")

	return cmd
}

func (o *options) validate() error {
	if o.minKeywords < 1 {
		return fmt.Errorf("--min_keywords must be at least 1, got %d", o.minKeywords)
	}
	if o.maxKeywords < o.minKeywords {
		return fmt.Errorf("--max_keywords (%d) must not be below --min_keywords (%d)", o.maxKeywords, o.minKeywords)
	}
	if o.minWidth < 0 {
		return errors.New("--min-width must not be negative")
	}
	return nil
}

func run(ctx context.Context, opts *options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	fs := afero.NewOsFs()

	vocab := spacelabel.DefaultVocabulary()
	if opts.vocabulary != "" {
		v, err := spacelabel.LoadVocabulary(fs, opts.vocabulary)
		if err != nil {
			return err
		}
		vocab = v
	}

	captioner := spacelabel.NewOllamaCaptioner(opts.ollamaURL, opts.model, nil)
	slog.Info("spacelabel: starting", "root", opts.rootDir, "model", captioner.Model(), "dry_run", opts.dryRun)

	cfg := &spacelabel.Config{
		Captioner:        captioner,
		Cache:            newMemoryCache(captionCacheTTL),
		Vocabulary:       vocab,
		Fs:               fs,
		MinKeywords:      opts.minKeywords,
		MaxKeywords:      opts.maxKeywords,
		MinImageWidth:    opts.minWidth,
		Dedup:            opts.dedup,
		EmbeddedMetadata: opts.metadata,
		DryRun:           opts.dryRun,
	}

	results, err := cfg.Run(ctx, opts.rootDir)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("%s\t%s\n", r.Folder, r.Label.Text)
	}
	slog.Info("spacelabel: done", "folders", len(results))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
