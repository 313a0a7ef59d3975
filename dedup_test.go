package spacelabel

import "testing"

func TestDedupFilter(t *testing.T) {
	t.Parallel()

	d := &dedupFilter{}

	if got := d.duplicateOf("/p/1.png", photoLike()); got != "" {
		t.Fatalf("first image reported as duplicate of %q", got)
	}
	if got := d.duplicateOf("/p/2.png", photoLike()); got != "/p/1.png" {
		t.Errorf("duplicateOf = %q, want /p/1.png", got)
	}
	if got := d.duplicateOf("/p/white.png", solidGray(64, 64, 255)); got != "" {
		t.Errorf("flat image matched %q, want it to differ from the striped gradient", got)
	}
	if len(d.seen) != 2 {
		t.Errorf("remembered %d images, want 2", len(d.seen))
	}
}

func TestDedupFilter_NilImageAccepted(t *testing.T) {
	t.Parallel()

	d := &dedupFilter{}
	if got := d.duplicateOf("/p/x.png", nil); got != "" {
		t.Errorf("nil image matched %q", got)
	}
	if len(d.seen) != 0 {
		t.Error("nil image must not be remembered")
	}
}
