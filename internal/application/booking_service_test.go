package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brotherhood/barbershop_backend/internal/config"
	"github.com/brotherhood/barbershop_backend/internal/domain"
	"github.com/brotherhood/barbershop_backend/internal/email"
)

type fakeSender struct {
	sent []email.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg email.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "<test-id@brotherhood.com>", nil
}

func completeSMTP() config.SMTPConfig {
	return config.SMTPConfig{
		Host:        "smtp-relay.example.com",
		Port:        "587",
		User:        "relay-user",
		Password:    "secret",
		OwnerEmail:  "owner@brotherhood.com",
		FromName:    "Brotherhood Barbershop",
		FromAddress: "bookings@brotherhood.com",
	}
}

func validRequest() domain.BookingRequest {
	return domain.BookingRequest{
		Name:          "Jane Doe",
		Phone:         "555-0100",
		Email:         "jane@example.com",
		PreferredDate: "2025-01-15",
		PreferredTime: "17:00-18:00",
		Service:       "Skin Fade",
		Notes:         "First visit",
	}
}

func bookingErr(t *testing.T, err error) *domain.BookingError {
	t.Helper()
	var be *domain.BookingError
	if !errors.As(err, &be) {
		t.Fatalf("expected *domain.BookingError, got %T (%v)", err, err)
	}
	return be
}

func TestSubmitBooking_Success(t *testing.T) {
	sender := &fakeSender{}
	svc := NewBookingService(completeSMTP(), sender)

	receipt, err := svc.SubmitBooking(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	if receipt.MessageID == "" {
		t.Fatal("expected a message id")
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.sent))
	}

	msg := sender.sent[0]
	if msg.To != "owner@brotherhood.com" || msg.ReplyTo != "jane@example.com" {
		t.Fatalf("unexpected routing to=%q reply-to=%q", msg.To, msg.ReplyTo)
	}
	if msg.FromName != "Brotherhood Barbershop" || msg.FromAddress != "bookings@brotherhood.com" {
		t.Fatalf("unexpected sender %q <%s>", msg.FromName, msg.FromAddress)
	}
	if msg.Subject != "New Booking Request from Jane Doe" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	for _, want := range []string{
		"Preferred Date: Wednesday, January 15, 2025",
		"Preferred Time: 5:00 PM - 6:00 PM",
		"Service: Skin Fade",
		"Additional Notes: First visit",
	} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}
	if !strings.Contains(msg.HTMLBody, "mailto:jane@example.com") {
		t.Error("html body missing mail link")
	}
}

func TestSubmitBooking_OptionalFieldsDefault(t *testing.T) {
	sender := &fakeSender{}
	svc := NewBookingService(completeSMTP(), sender)

	req := domain.BookingRequest{Name: "Sam", Phone: "555", Email: "sam@example.com"}
	if _, err := svc.SubmitBooking(context.Background(), req); err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	body := sender.sent[0].TextBody
	for _, want := range []string{
		"Preferred Date: Not specified",
		"Preferred Time: Not specified",
		"Service: Not specified",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("text body missing %q", want)
		}
	}
	if strings.Contains(body, "Additional Notes") {
		t.Error("notes line should be omitted")
	}
}

func TestSubmitBooking_MissingRequiredFields(t *testing.T) {
	cases := []domain.BookingRequest{
		{Name: "", Phone: "555", Email: "a@b.com"},
		{Name: "Jane", Phone: "  ", Email: "a@b.com"},
		{Name: "Jane", Phone: "555"},
	}
	for _, req := range cases {
		sender := &fakeSender{}
		svc := NewBookingService(completeSMTP(), sender)

		_, err := svc.SubmitBooking(context.Background(), req)
		be := bookingErr(t, err)
		if be.Kind != domain.BookingInvalid {
			t.Fatalf("expected invalid kind, got %v", be.Kind)
		}
		if !strings.Contains(be.Message, "Missing required fields") {
			t.Fatalf("unexpected message %q", be.Message)
		}
		if len(sender.sent) != 0 {
			t.Fatal("no mail should be attempted for invalid input")
		}
	}
}

func TestSubmitBooking_MissingConfiguration(t *testing.T) {
	smtp := completeSMTP()
	smtp.Password = ""
	smtp.OwnerEmail = ""
	sender := &fakeSender{}
	svc := NewBookingService(smtp, sender)

	_, err := svc.SubmitBooking(context.Background(), validRequest())
	be := bookingErr(t, err)
	if be.Kind != domain.BookingUnavailable {
		t.Fatalf("expected unavailable kind, got %v", be.Kind)
	}
	for _, leaked := range []string{"BREVO_SMTP_PASSWORD", "BARBERSHOP_OWNER_EMAIL"} {
		if strings.Contains(be.Message, leaked) || strings.Contains(be.Detail, leaked) {
			t.Fatalf("caller-facing error reveals %s: %+v", leaked, be)
		}
	}
	if len(sender.sent) != 0 {
		t.Fatal("no mail should be attempted without configuration")
	}
}

func TestSubmitBooking_NilSender(t *testing.T) {
	svc := NewBookingService(completeSMTP(), nil)
	_, err := svc.SubmitBooking(context.Background(), validRequest())
	if be := bookingErr(t, err); be.Kind != domain.BookingUnavailable {
		t.Fatalf("expected unavailable kind, got %v", be.Kind)
	}
}

func TestSubmitBooking_DeliveryFailure(t *testing.T) {
	relayErr := errors.New("535 authentication failed")
	svc := NewBookingService(completeSMTP(), &fakeSender{err: relayErr})

	_, err := svc.SubmitBooking(context.Background(), validRequest())
	be := bookingErr(t, err)
	if be.Kind != domain.BookingDeliveryFailed {
		t.Fatalf("expected delivery kind, got %v", be.Kind)
	}
	if be.Detail != relayErr.Error() {
		t.Fatalf("expected relay error as detail, got %q", be.Detail)
	}
	if !errors.Is(err, relayErr) {
		t.Fatal("BookingError should unwrap to the relay error")
	}
	if !strings.Contains(be.Message, "Failed to send booking request") {
		t.Fatalf("unexpected message %q", be.Message)
	}
}
