package repository

import (
	"context"
	"fmt"
	"os"
)

// GalleryRepository reads gallery file names from a local directory.
type GalleryRepository struct {
	dir string
}

func NewGalleryRepository(dir string) *GalleryRepository {
	return &GalleryRepository{dir: dir}
}

// ListFileNames returns the names of the regular entries in the directory.
// Subdirectories are skipped.
func (r *GalleryRepository) ListFileNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("reading gallery directory %s: %w", r.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
