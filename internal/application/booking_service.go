package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/brotherhood/barbershop_backend/internal/config"
	"github.com/brotherhood/barbershop_backend/internal/domain"
	"github.com/brotherhood/barbershop_backend/internal/email"
	"github.com/brotherhood/barbershop_backend/pkg/logger"
)

const (
	msgMissingFields  = "Missing required fields: name, phone, and email are required"
	msgUnavailable    = "Booking service is temporarily unavailable. Please contact us directly via phone or email."
	detailUnavailable = "SMTP configuration missing"
	msgDeliveryFailed = "Failed to send booking request. Please try again or contact us directly."
)

type BookingService struct {
	smtp      config.SMTPConfig
	sender    email.Sender
	validator *Validator
}

// NewBookingService wires the notifier. sender may be nil when the relay
// could not be set up; requests are then rejected as unavailable.
func NewBookingService(smtp config.SMTPConfig, sender email.Sender) *BookingService {
	return &BookingService{
		smtp:      smtp,
		sender:    sender,
		validator: &Validator{},
	}
}

// SubmitBooking validates the request, renders the owner notification and
// hands it to the relay. Errors are always *domain.BookingError.
func (s *BookingService) SubmitBooking(ctx context.Context, req domain.BookingRequest) (domain.BookingReceipt, error) {
	if missing := s.validator.MissingRequiredFields(req); len(missing) > 0 {
		return domain.BookingReceipt{}, &domain.BookingError{
			Kind:    domain.BookingInvalid,
			Message: msgMissingFields,
		}
	}

	if missing := s.smtp.MissingKeys(); len(missing) > 0 {
		logger.Errorf("Missing SMTP configuration in environment variables: %s", strings.Join(missing, ", "))
		return domain.BookingReceipt{}, &domain.BookingError{
			Kind:    domain.BookingUnavailable,
			Message: msgUnavailable,
			Detail:  detailUnavailable,
		}
	}
	if s.sender == nil {
		logger.Errorf("SMTP relay client is not initialized, check BREVO_SMTP_PORT")
		return domain.BookingReceipt{}, &domain.BookingError{
			Kind:    domain.BookingUnavailable,
			Message: msgUnavailable,
			Detail:  detailUnavailable,
		}
	}

	msg, err := s.buildMessage(req)
	if err != nil {
		return domain.BookingReceipt{}, s.deliveryFailed(err)
	}

	logger.WithFields(logger.Fields{
		"host":    s.smtp.Host,
		"port":    s.smtp.Port,
		"from":    s.smtp.FromAddress,
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("Attempting to send booking email")

	messageID, err := s.sender.Send(ctx, msg)
	if err != nil {
		return domain.BookingReceipt{}, s.deliveryFailed(err)
	}

	logger.WithFields(logger.Fields{"message_id": messageID}).Info("Booking email sent successfully")
	return domain.BookingReceipt{MessageID: messageID}, nil
}

func (s *BookingService) buildMessage(req domain.BookingRequest) (email.Message, error) {
	service := strings.TrimSpace(req.Service)
	if service == "" {
		service = notSpecified
	}

	details := email.BookingDetails{
		BusinessName: s.smtp.FromName,
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Date:         FormatPreferredDate(req.PreferredDate),
		Time:         FormatTimeSlot(req.PreferredTime),
		Service:      service,
		Notes:        strings.TrimSpace(req.Notes),
	}

	htmlBody, textBody, err := email.RenderBookingNotification(details)
	if err != nil {
		return email.Message{}, err
	}

	return email.Message{
		FromName:    s.smtp.FromName,
		FromAddress: s.smtp.FromAddress,
		To:          s.smtp.OwnerEmail,
		ReplyTo:     details.Email,
		Subject:     email.BookingSubject(details.Name),
		HTMLBody:    htmlBody,
		TextBody:    textBody,
	}, nil
}

// deliveryFailed logs the full cause for operators. The raw error text is
// also returned to the caller as Detail.
func (s *BookingService) deliveryFailed(err error) *domain.BookingError {
	logger.WithFields(logger.Fields{
		"message": err.Error(),
		"type":    fmt.Sprintf("%T", err),
		"chain":   fmt.Sprintf("%+v", err),
	}).Error("Error sending booking email")

	return &domain.BookingError{
		Kind:    domain.BookingDeliveryFailed,
		Message: msgDeliveryFailed,
		Detail:  err.Error(),
		Cause:   err,
	}
}
