package spacelabel

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const defaultMaxImageBytes = 32 << 20 // 32MB

// ImageData holds an image file read from the filesystem.
type ImageData struct {
	Path     string
	Data     []byte
	MIMEType string

	// Image is the decoded picture, nil when decoding failed.
	Image     image.Image
	DecodeErr error
}

// Input returns the image as Captioner input.
func (d *ImageData) Input() ImageInput {
	return ImageInput{Path: d.Path, Data: d.Data, MIMEType: d.MIMEType}
}

// LoadImage reads the image at path from cfg.Fs, reading at most
// cfg.MaxImageBytes. An unreadable file is an error; undecodable content is
// not, it is reported through ImageData.DecodeErr so callers can decide how to
// degrade.
func (cfg *Config) LoadImage(path string) (*ImageData, error) {
	cfg.defaults()

	f, err := cfg.Fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, cfg.MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	d := &ImageData{Path: path, Data: data, MIMEType: detectMIME(path, data)}
	d.Image, _, d.DecodeErr = image.Decode(bytes.NewReader(data))
	return d, nil
}

// detectMIME sniffs the content type, falling back to the file extension when
// the bytes are not recognized as an image.
func detectMIME(path string, data []byte) string {
	ct := http.DetectContentType(data)
	if strings.HasPrefix(ct, "image/") {
		return ct
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		// Strip MIME parameters: "image/jpeg; charset=utf-8" → "image/jpeg"
		if idx := strings.IndexByte(byExt, ';'); idx >= 0 {
			byExt = strings.TrimSpace(byExt[:idx])
		}
		return byExt
	}
	return "application/octet-stream"
}
