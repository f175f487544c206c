package application

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/brotherhood/barbershop_backend/internal/domain"
	"github.com/brotherhood/barbershop_backend/pkg/logger"
)

const (
	galleryBackupMarker = ".backup"
	galleryAltPrefix    = "Gallery image"
)

var galleryExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type GalleryService struct {
	repo         domain.GalleryRepository
	cache        *GalleryCache
	publicPrefix string
}

func NewGalleryService(repo domain.GalleryRepository, cache *GalleryCache, publicPrefix string) *GalleryService {
	return &GalleryService{
		repo:         repo,
		cache:        cache,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}
}

// ListImages returns the gallery listing, served from the cache while it is
// fresh. A repository error degrades to an empty fallback listing that is
// not cached, so the next call reads the source again.
func (s *GalleryService) ListImages(ctx context.Context) domain.GalleryListing {
	if images, ok := s.cache.Get(); ok {
		return domain.GalleryListing{Images: images}
	}

	names, err := s.repo.ListFileNames(ctx)
	if err != nil {
		logger.Errorf("Error reading gallery directory: %v", err)
		return domain.GalleryListing{Images: []domain.GalleryImage{}, Fallback: true}
	}

	images := s.buildImages(names)
	s.cache.Set(images)
	return domain.GalleryListing{Images: images}
}

func (s *GalleryService) buildImages(names []string) []domain.GalleryImage {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if isGalleryImage(name) {
			kept = append(kept, name)
		}
	}
	// byte-wise ordinal order, so "Z.jpg" sorts before "a.jpg"
	sort.Strings(kept)

	images := make([]domain.GalleryImage, 0, len(kept))
	for _, name := range kept {
		images = append(images, domain.GalleryImage{
			Src: s.publicPrefix + "/" + name,
			Alt: galleryAltPrefix + " " + strings.TrimSuffix(name, filepath.Ext(name)),
		})
	}
	return images
}

func isGalleryImage(name string) bool {
	if !galleryExtensions[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	return !strings.Contains(strings.ToLower(name), galleryBackupMarker)
}
