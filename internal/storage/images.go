package storage

import "sync"

// PlaceholderImagePath is served for items without an uploaded asset.
const PlaceholderImagePath = "/static/img/menu-item-placeholder.png"

// ImageIndex maps item ids to uploaded asset URLs. The index is
// in-memory only: assets live in the bucket, and the mapping is
// rebuilt as managers re-upload. Items without an entry fall back to
// the placeholder.
type ImageIndex struct {
	mu   sync.RWMutex
	urls map[string]string
}

func NewImageIndex() *ImageIndex {
	return &ImageIndex{urls: make(map[string]string)}
}

// Set records the asset URL for an item, replacing any previous one.
func (ix *ImageIndex) Set(itemID, url string) {
	ix.mu.Lock()
	ix.urls[itemID] = url
	ix.mu.Unlock()
}

// URLFor resolves an item's image URL, falling back to the placeholder.
func (ix *ImageIndex) URLFor(itemID string) string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if url, ok := ix.urls[itemID]; ok {
		return url
	}
	return PlaceholderImagePath
}
