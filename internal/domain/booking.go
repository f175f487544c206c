package domain

import "fmt"

// BookingRequest is the payload submitted by the website booking form.
type BookingRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PreferredDate string `json:"preferredDate,omitempty"` // YYYY-MM-DD
	PreferredTime string `json:"preferredTime,omitempty"` // HH:MM-HH:MM
	Service       string `json:"service,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// BookingReceipt is returned when the relay accepted the notification.
type BookingReceipt struct {
	MessageID string `json:"messageId"`
}

// BookingErrorKind classifies why a booking could not be forwarded.
type BookingErrorKind int

const (
	// BookingInvalid means the visitor's input was incomplete.
	BookingInvalid BookingErrorKind = iota + 1
	// BookingUnavailable means the relay is not configured.
	BookingUnavailable
	// BookingDeliveryFailed means formatting or the relay call failed.
	BookingDeliveryFailed
)

func (k BookingErrorKind) String() string {
	switch k {
	case BookingInvalid:
		return "invalid"
	case BookingUnavailable:
		return "unavailable"
	case BookingDeliveryFailed:
		return "delivery_failed"
	default:
		return fmt.Sprintf("BookingErrorKind(%d)", int(k))
	}
}

// BookingError carries a caller-facing Message and an optional Detail.
// Cause is for operator logs only.
type BookingError struct {
	Kind    BookingErrorKind
	Message string
	Detail  string
	Cause   error
}

func (e *BookingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("booking %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("booking %s: %s", e.Kind, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Cause
}

// TimeSlot is one bookable hour on a given day.
type TimeSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DaySchedule lists the slots offered on a date.
type DaySchedule struct {
	Date   string     `json:"date"`
	Closed bool       `json:"closed"`
	Slots  []TimeSlot `json:"slots"`
}
