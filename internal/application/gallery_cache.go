package application

import (
	"sync"
	"time"

	"github.com/brotherhood/barbershop_backend/internal/domain"
)

// GalleryCache holds the last successful gallery listing for a fixed TTL.
// It moves through empty -> populated -> expired -> populated again; there
// is no explicit invalidation.
type GalleryCache struct {
	mu       sync.RWMutex
	images   []domain.GalleryImage
	storedAt time.Time
	filled   bool
	ttl      time.Duration
	now      func() time.Time
}

// NewGalleryCache creates an empty cache.
func NewGalleryCache(ttl time.Duration) *GalleryCache {
	return &GalleryCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns a copy of the cached listing if one was stored less than ttl ago.
func (gc *GalleryCache) Get() ([]domain.GalleryImage, bool) {
	gc.mu.RLock()
	defer gc.mu.RUnlock()

	if !gc.filled {
		return nil, false
	}
	if gc.now().Sub(gc.storedAt) >= gc.ttl {
		return nil, false
	}
	images := make([]domain.GalleryImage, len(gc.images))
	copy(images, gc.images)
	return images, true
}

// Set replaces the cached listing and restarts the TTL window.
func (gc *GalleryCache) Set(images []domain.GalleryImage) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	gc.images = images
	gc.storedAt = gc.now()
	gc.filled = true
}
