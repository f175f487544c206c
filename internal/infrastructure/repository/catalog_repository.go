package repository

import (
	"strings"

	"github.com/brotherhood/barbershop_backend/internal/domain"
)

type catalogRepository struct {
	categories []domain.ServiceCategory
	faqs       []domain.FAQ
	business   domain.BusinessInfo
}

// NewCatalogRepository returns the site content compiled into the binary.
func NewCatalogRepository() domain.CatalogRepository {
	return &catalogRepository{
		categories: serviceCategories,
		faqs:       faqs,
		business:   business,
	}
}

// ServiceCategories returns a deep copy so callers can't mutate the catalog.
func (r *catalogRepository) ServiceCategories() []domain.ServiceCategory {
	out := make([]domain.ServiceCategory, len(r.categories))
	for i, c := range r.categories {
		c.Services = append([]domain.Service(nil), c.Services...)
		out[i] = c
	}
	return out
}

func (r *catalogRepository) FAQs() []domain.FAQ {
	return append([]domain.FAQ(nil), r.faqs...)
}

func (r *catalogRepository) Business() domain.BusinessInfo {
	b := r.business
	b.WhatsAppURL = whatsAppURL(b.WhatsApp)
	return b
}

// whatsAppURL builds a wa.me deep link from a phone number in any format.
func whatsAppURL(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return "https://wa.me/" + digits
}

var business = domain.BusinessInfo{
	Name:     "Brotherhood Barbershop",
	Phone:    "+1 (895) 345-6578",
	WhatsApp: "+18953456578",
	Email:    "barbershop@brotherhood.com",
	Address:  "123 Placeholder St, Your City, ST 00000",
	Hours: domain.BusinessHours{
		Weekdays: "9:00am - 6:00pm",
		Saturday: "10:00am - 4:00pm",
		Sunday:   "Closed",
	},
}

var serviceCategories = []domain.ServiceCategory{
	{
		Title: "Haircuts",
		Icon:  "mdi:scissors-cutting",
		Services: []domain.Service{
			{Title: "Classic Haircut", Price: "$30", Description: "Traditional barbershop cut with clippers and scissors.", Icon: "mdi:content-cut"},
			{Title: "Skin Fade", Price: "$35", Description: "Sharp, clean fade that blends seamlessly to the skin.", Icon: "mdi:content-cut"},
			{Title: "Taper Fade", Price: "$32", Description: "Gradual fade that maintains length on top.", Icon: "mdi:content-cut"},
			{Title: "Pompadour", Price: "$40", Description: "Classic voluminous style with precise styling.", Icon: "mdi:content-cut"},
			{Title: "Buzz Cut", Price: "$22", Description: "Quick, clean clipper cut for a fresh look.", Icon: "mdi:account"},
			{Title: "Long Hair Trim", Price: "$35", Description: "Professional trim for longer hairstyles.", Icon: "mdi:content-cut"},
		},
	},
	{
		Title: "Beards",
		Icon:  "mdi:mustache",
		Services: []domain.Service{
			{Title: "Beard Trim", Price: "$15", Description: "Expert shaping and maintenance of your beard.", Icon: "mdi:mustache"},
			{Title: "Hot Towel Shave", Price: "$30", Description: "Traditional straight razor shave with hot towel treatment.", Icon: "mdi:razor-double-edge"},
			{Title: "Line Up", Price: "$12", Description: "Precise edge work and line definition.", Icon: "mdi:content-cut"},
			{Title: "Full Beard Service", Price: "$25", Description: "Complete beard grooming including trim, shape, and styling.", Icon: "mdi:mustache"},
			{Title: "Mustache Trim", Price: "$10", Description: "Precise mustache shaping and styling.", Icon: "mdi:mustache"},
		},
	},
	{
		Title: "Speciality",
		Icon:  "mdi:star",
		Services: []domain.Service{
			{Title: "Hair Design", Price: "$45", Description: "Custom designs and patterns cut into your hair.", Icon: "mdi:draw-pen"},
			{Title: "Color Service", Price: "$60", Description: "Professional hair coloring and highlights.", Icon: "mdi:palette"},
			{Title: "Hair & Beard Combo", Price: "$40", Description: "Complete grooming package for hair and beard.", Icon: "mdi:scissors-cutting"},
			{Title: "Executive Cut", Price: "$50", Description: "Premium service with hot towel and styling.", Icon: "mdi:tie"},
			{Title: "Wedding Package", Price: "$75", Description: "Special occasion grooming with premium styling.", Icon: "mdi:heart"},
		},
	},
	{
		Title: "Kids",
		Icon:  "mdi:face-child",
		Services: []domain.Service{
			{Title: "Kids Cut (12 & under)", Price: "$25", Description: "Gentle, professional cut designed for children.", Icon: "mdi:face-child"},
			{Title: "First Haircut", Price: "$30", Description: "Special first haircut experience with certificate.", Icon: "mdi:star"},
			{Title: "Kids Fade", Price: "$28", Description: "Clean fade style for kids.", Icon: "mdi:content-cut"},
			{Title: "Kids Design", Price: "$35", Description: "Fun designs and patterns for kids.", Icon: "mdi:draw-pen"},
		},
	},
}

var faqs = []domain.FAQ{
	{
		Question: "Do you accept walk-ins?",
		Answer:   "Yes, when time allows. Booking ahead guarantees your slot and ensures you get the time that works best for you. Walk-ins are welcome based on availability.",
	},
	{
		Question: "What payment methods do you take?",
		Answer:   "We accept cash and all major credit cards. Contactless payments are also available for your convenience.",
	},
	{
		Question: "Can I cancel or reschedule?",
		Answer:   "Yes, absolutely. Use the Calendly link in your confirmation email to reschedule or cancel. We appreciate at least 24 hours notice when possible.",
	},
	{
		Question: "Do you cut kids hair?",
		Answer:   "Yes, we offer kids cuts for ages 12 and under. Our barbers are experienced with children and make the experience comfortable and fun.",
	},
	{
		Question: "How long does a typical haircut take?",
		Answer:   "Most standard haircuts take 30-45 minutes. Specialty cuts, fades, and full services may take 45-60 minutes. We take our time to ensure quality.",
	},
	{
		Question: "Do you offer gift cards?",
		Answer:   "Yes, gift cards are available for purchase in-store or online. They make perfect gifts for any occasion.",
	},
}
