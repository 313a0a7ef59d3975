package spacelabel

import (
	"slices"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	t.Parallel()

	v := DefaultVocabulary()

	tests := []struct {
		name     string
		text     string
		category Category
		want     []string
	}{
		{
			name:     "materials in text order",
			text:     "Wooden floor with marble and Oak panels",
			category: CategoryMaterials,
			want:     []string{"wooden", "marble", "oak"},
		},
		{
			name:     "repeated terms kept",
			text:     "stone walls, stone arches",
			category: CategoryMaterials,
			want:     []string{"stone", "stone"},
		},
		{
			name:     "run-on compound",
			text:     "thewood paneling",
			category: CategoryMaterials,
			want:     []string{"wood"},
		},
		{
			name:     "excluded terms dropped",
			text:     "a stage with a piano and speakers",
			category: CategoryArchitecture,
			want:     nil,
		},
		{
			name:     "compound place type and qualified room",
			text:     "a conference room with a long table",
			category: CategoryPlaceType,
			want:     []string{"conference-room", "meeting-room"},
		},
		{
			name:     "plain place types",
			text:     "the church nave",
			category: CategoryPlaceType,
			want:     []string{"church", "nave"},
		},
		{
			name:     "architecture",
			text:     "a dome resting on four columns and an arch",
			category: CategoryArchitecture,
			want:     []string{"dome", "arch"},
		},
		{
			name:     "nothing found",
			text:     "a blurry photo",
			category: CategoryAcoustic,
			want:     nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := v.ExtractKeywords(tc.text, tc.category)
			if !slices.Equal(got, tc.want) {
				t.Errorf("ExtractKeywords(%q, %s) = %v, want %v", tc.text, tc.category, got, tc.want)
			}
		})
	}
}

func TestQualifyRoom(t *testing.T) {
	t.Parallel()

	v := DefaultVocabulary()

	tests := []struct {
		text string
		want string
	}{
		{"a quiet room full of books", "reading-room"},
		{"a room used for band practice", "rehearsal-room"},
		{"a cozy living room", ""},
		{"a big room", ""},
		{"the hall", ""},
	}
	for _, tc := range tests {
		if got := v.qualifyRoom(tc.text); got != tc.want {
			t.Errorf("qualifyRoom(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestKeywordSet(t *testing.T) {
	t.Parallel()

	ks := NewKeywordSet()
	for _, c := range Categories {
		if ks[c] == nil {
			t.Errorf("category %s should start with an empty list", c)
		}
	}

	ks.Merge(KeywordSet{CategoryMaterials: {"wood"}, CategorySpatial: {"large"}})
	ks.Merge(KeywordSet{CategoryMaterials: {"stone", "wood"}})
	if got := ks[CategoryMaterials]; !slices.Equal(got, []string{"wood", "stone", "wood"}) {
		t.Errorf("materials = %v", got)
	}
	if ks.Len() != 4 {
		t.Errorf("Len = %d, want 4", ks.Len())
	}

	clone := ks.Clone()
	clone[CategoryMaterials][0] = "glass"
	if ks[CategoryMaterials][0] != "wood" {
		t.Error("Clone must not share backing arrays")
	}
}
