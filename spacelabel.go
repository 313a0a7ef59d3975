package spacelabel

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/spf13/afero"
)

// ErrFolderFailed wraps any error that aborts the labeling of a folder. It is
// fatal to the whole run.
var ErrFolderFailed = errors.New("spacelabel: folder failed")

// ErrNoCaptioner is returned by Run when Config.Captioner is nil.
var ErrNoCaptioner = errors.New("spacelabel: no captioner configured")

// ImageInput is an image handed to a Captioner.
type ImageInput struct {
	Path     string // source file, for logging
	Data     []byte // raw encoded bytes
	MIMEType string // e.g. "image/jpeg"
}

// Cache abstracts key-value caching (go-cache, Redis, sync.Map, etc.)
type Cache interface {
	Key(prefix, value string) string
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
}

// Captioner abstracts a vision model that describes an image. An empty prompt
// asks for a plain caption; maxTokens bounds the generated length.
type Captioner interface {
	Caption(ctx context.Context, img ImageInput, prompt string, maxTokens int) (string, error)
}

// Config wires a labeling run: the captioner, cache and filesystem it uses and
// the knobs that shape the label.
type Config struct {
	Captioner  Captioner   // required for Run and ExtractImageKeywords
	Cache      Cache       // optional: memoises captions (nil = no caching)
	Vocabulary *Vocabulary // default: DefaultVocabulary()
	Fs         afero.Fs    // default: afero.NewOsFs()

	MinKeywords int // default: DefaultMinKeywords (5)
	MaxKeywords int // default: DefaultMaxKeywords (15), never below MinKeywords

	// MinImageWidth skips images narrower than this many pixels. 0 disables
	// the check.
	MinImageWidth int

	// MaxImageBytes caps how much of each image file is read (default: 32MB).
	MaxImageBytes int64

	// Dedup skips images perceptually identical to one already processed in
	// the same folder.
	Dedup bool

	// EmbeddedMetadata appends EXIF/IPTC/XMP description fields to the
	// caption text before keyword extraction.
	EmbeddedMetadata bool

	// DryRun computes labels without copying or renaming anything.
	DryRun bool

	// Rand returns a pseudo-random integer in [0,n). Default: rand.IntN.
	Rand func(n int) int

	// Optional hooks, called synchronously.
	OnPanic func(tag string, r any)
	OnLabel func(FolderResult)
}

// defaults fills unset fields: OS filesystem, default vocabulary, label bounds 5..15.
func (c *Config) defaults() {
	if c.Vocabulary == nil {
		c.Vocabulary = DefaultVocabulary()
	}
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}
	if c.MinKeywords <= 0 {
		c.MinKeywords = DefaultMinKeywords
	}
	if c.MaxKeywords <= 0 {
		c.MaxKeywords = DefaultMaxKeywords
	}
	if c.MaxKeywords < c.MinKeywords {
		c.MaxKeywords = c.MinKeywords
	}
	if c.MaxImageBytes <= 0 {
		c.MaxImageBytes = defaultMaxImageBytes
	}
	if c.Rand == nil {
		c.Rand = rand.IntN
	}
}
