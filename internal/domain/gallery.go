package domain

import "context"

// GalleryImage is one entry of the public gallery listing.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// GalleryListing is what the gallery lister hands to the HTTP layer.
// Fallback is set when the image source could not be read and Images is
// the empty degraded result.
type GalleryListing struct {
	Images   []GalleryImage
	Fallback bool
}

// GalleryRepository lists the raw file names available to the gallery.
type GalleryRepository interface {
	ListFileNames(ctx context.Context) ([]string, error)
}
