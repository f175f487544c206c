package http

import (
	"github.com/brotherhood/barbershop_backend/internal/application"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the static site content: price list, FAQ and the
// contact card.
type CatalogHandler struct {
	service *application.CatalogService
}

func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) GetServices(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.service.GetServiceCategories()})
}

func (h *CatalogHandler) GetFAQs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"faqs": h.service.GetFAQs()})
}

func (h *CatalogHandler) GetBusiness(c *fiber.Ctx) error {
	return c.JSON(h.service.GetBusinessInfo())
}
