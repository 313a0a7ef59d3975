package spacelabel

import (
	"image"

	"github.com/corona10/goimagehash"
)

// Images whose dHash values differ by fewer bits than this are the same shot.
const dedupThreshold = 10

type seenImage struct {
	path string
	hash *goimagehash.ImageHash
}

// dedupFilter tracks the dHash of every image kept so far in one folder.
type dedupFilter struct {
	seen []seenImage
}

// duplicateOf returns the path of an earlier image that img is perceptually
// identical to, or "" if img is new. New images are remembered under path.
// Images that cannot be hashed are treated as new and not remembered.
func (d *dedupFilter) duplicateOf(path string, img image.Image) string {
	if img == nil {
		return ""
	}
	hash, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return ""
	}
	for _, s := range d.seen {
		if dist, err := hash.Distance(s.hash); err == nil && dist < dedupThreshold {
			return s.path
		}
	}
	d.seen = append(d.seen, seenImage{path: path, hash: hash})
	return ""
}
