package application

import (
	"strings"

	"github.com/brotherhood/barbershop_backend/internal/domain"
)

// Validator checks booking form input before anything is sent.
type Validator struct{}

// MissingRequiredFields returns the names of the required booking fields
// that are empty or only whitespace.
func (v *Validator) MissingRequiredFields(req domain.BookingRequest) []string {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	return missing
}
