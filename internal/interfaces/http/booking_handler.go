package http

import (
	"errors"

	"github.com/brotherhood/barbershop_backend/internal/application"
	"github.com/brotherhood/barbershop_backend/internal/domain"
	"github.com/brotherhood/barbershop_backend/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates the booking form handler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{
		service: service,
	}
}

// CreateBooking forwards a booking form submission to the shop owner.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req domain.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	receipt, err := h.service.SubmitBooking(c.UserContext(), req)
	if err != nil {
		return writeBookingError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":   true,
		"message":   "Booking request sent successfully",
		"messageId": receipt.MessageID,
	})
}

func writeBookingError(c *fiber.Ctx, err error) error {
	var be *domain.BookingError
	if !errors.As(err, &be) {
		logger.Errorf("unexpected booking error: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to send booking request. Please try again or contact us directly.")
	}

	switch be.Kind {
	case domain.BookingInvalid:
		return errorJSON(c, fiber.StatusBadRequest, be.Message)
	case domain.BookingUnavailable, domain.BookingDeliveryFailed:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   be.Message,
			"details": be.Detail,
		})
	default:
		logger.Errorf("unhandled booking error kind %s: %v", be.Kind, err)
		return errorJSON(c, fiber.StatusInternalServerError, be.Message)
	}
}

// GetSlots lists the bookable hours for ?date=YYYY-MM-DD.
func (h *BookingHandler) GetSlots(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Query parameter 'date' is required (YYYY-MM-DD)")
	}

	day, err := application.ParseBookingDate(date)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(application.SlotsForDate(day))
}
