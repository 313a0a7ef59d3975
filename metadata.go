package spacelabel

import (
	"bytes"
	"strings"

	"github.com/bep/imagemeta"
)

// ImageDescription holds the free-text fields photographers and cataloguing
// tools embed in EXIF, IPTC and XMP.
type ImageDescription struct {
	EXIFDescription string
	IPTCCaption     string
	IPTCHeadline    string
	IPTCObjectName  string
	IPTCKeywords    []string
	XMPDescription  string
	XMPTitle        string
	XMPSubject      []string
}

// Text joins every non-empty field with spaces.
func (d *ImageDescription) Text() string {
	if d == nil {
		return ""
	}
	parts := []string{
		d.EXIFDescription,
		d.IPTCObjectName,
		d.IPTCHeadline,
		d.IPTCCaption,
		strings.Join(d.IPTCKeywords, " "),
		d.XMPTitle,
		d.XMPDescription,
		strings.Join(d.XMPSubject, " "),
	}
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// descriptionTags lists, per source, the normalized tag names we read.
// Names are compared lowercased with separators removed, so "Caption-Abstract"
// and "CaptionAbstract" are the same tag.
var descriptionTags = map[imagemeta.Source]map[string]bool{
	imagemeta.EXIF: {
		"imagedescription": true,
	},
	imagemeta.IPTC: {
		"captionabstract": true,
		"headline":        true,
		"objectname":      true,
		"keywords":        true,
	},
	imagemeta.XMP: {
		"description": true,
		"title":       true,
		"subject":     true,
	},
}

func normalizeTag(tag string) string {
	tag = strings.ToLower(tag)
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(tag)
}

// ExtractDescription parses description-like metadata from raw image bytes.
// Returns nil if the data is nil, empty, cannot be parsed, or carries no
// description. Never returns an error.
func ExtractDescription(data []byte) *ImageDescription {
	if len(data) == 0 {
		return nil
	}

	desc := &ImageDescription{}
	found := false

	_, err := imagemeta.Decode(imagemeta.Options{
		R:       bytes.NewReader(data),
		Sources: imagemeta.EXIF | imagemeta.IPTC | imagemeta.XMP,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			if tags, ok := descriptionTags[ti.Source]; ok {
				return tags[normalizeTag(ti.Tag)]
			}
			return false
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			if handleDescriptionTag(desc, ti) {
				found = true
			}
			return nil
		},
	})

	if err != nil || !found {
		return nil
	}

	return desc
}

// handleDescriptionTag stores one tag value and reports whether it was
// non-empty.
func handleDescriptionTag(desc *ImageDescription, ti imagemeta.TagInfo) bool {
	tag := normalizeTag(ti.Tag)

	// List-valued tags.
	switch {
	case ti.Source == imagemeta.IPTC && tag == "keywords":
		desc.IPTCKeywords = append(desc.IPTCKeywords, tagValueStrings(ti.Value)...)
		return len(desc.IPTCKeywords) > 0
	case ti.Source == imagemeta.XMP && tag == "subject":
		desc.XMPSubject = append(desc.XMPSubject, tagValueStrings(ti.Value)...)
		return len(desc.XMPSubject) > 0
	}

	s := tagValueString(ti.Value)
	if s == "" {
		return false
	}

	switch ti.Source {
	case imagemeta.EXIF:
		desc.EXIFDescription = s
	case imagemeta.IPTC:
		switch tag {
		case "captionabstract":
			desc.IPTCCaption = s
		case "headline":
			desc.IPTCHeadline = s
		case "objectname":
			desc.IPTCObjectName = s
		default:
			return false
		}
	case imagemeta.XMP:
		switch tag {
		case "description":
			desc.XMPDescription = s
		case "title":
			desc.XMPTitle = s
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// tagValueString returns the first string in v. XMP alt and seq lists arrive
// as []any.
func tagValueString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []string:
		if len(val) > 0 {
			return strings.TrimSpace(val[0])
		}
		return ""
	case []any:
		if len(val) > 0 {
			if s, ok := val[0].(string); ok {
				return strings.TrimSpace(s)
			}
		}
		return ""
	default:
		return ""
	}
}

// tagValueStrings extracts every non-empty string from a tag value.
func tagValueStrings(v any) []string {
	var out []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	switch val := v.(type) {
	case string:
		add(val)
	case []string:
		for _, s := range val {
			add(s)
		}
	case []any:
		for _, x := range val {
			if s, ok := x.(string); ok {
				add(s)
			}
		}
	}
	return out
}
