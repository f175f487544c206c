package http

import (
	"github.com/brotherhood/barbershop_backend/internal/application"
	"github.com/gofiber/fiber/v2"
)

type GalleryHandler struct {
	service *application.GalleryService
}

func NewGalleryHandler(service *application.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// GetImages always answers 200; an unreadable source yields an empty list
// with a short cache lifetime.
func (h *GalleryHandler) GetImages(c *fiber.Ctx) error {
	listing := h.service.ListImages(c.UserContext())

	if listing.Fallback {
		c.Set(fiber.HeaderCacheControl, cacheControlGalleryFallback)
	} else {
		c.Set(fiber.HeaderCacheControl, cacheControlGallery)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"images": listing.Images})
}
