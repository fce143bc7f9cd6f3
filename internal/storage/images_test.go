package storage

import "testing"

func TestImageIndexFallsBackToPlaceholder(t *testing.T) {
	ix := NewImageIndex()

	if got := ix.URLFor("unknown"); got != PlaceholderImagePath {
		t.Errorf("expected placeholder, got %q", got)
	}

	ix.Set("1", "https://assets.example.com/items/1/a.jpg")
	if got := ix.URLFor("1"); got != "https://assets.example.com/items/1/a.jpg" {
		t.Errorf("got %q", got)
	}

	// Re-upload replaces the previous asset.
	ix.Set("1", "https://assets.example.com/items/1/b.jpg")
	if got := ix.URLFor("1"); got != "https://assets.example.com/items/1/b.jpg" {
		t.Errorf("got %q", got)
	}
}
