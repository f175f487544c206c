package domain

// Service is a single item on the price list.
type Service struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ServiceCategory groups services shown together on the site.
type ServiceCategory struct {
	Title    string    `json:"title"`
	Icon     string    `json:"icon"`
	Blurb    string    `json:"blurb"`
	Services []Service `json:"services"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type BusinessHours struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

// BusinessInfo is the contact card rendered in the footer and contact section.
type BusinessInfo struct {
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	WhatsApp    string        `json:"whatsapp"`
	WhatsAppURL string        `json:"whatsappUrl"`
	Email       string        `json:"email"`
	Address     string        `json:"address"`
	Hours       BusinessHours `json:"hours"`
}

// CatalogRepository serves the static site content.
type CatalogRepository interface {
	ServiceCategories() []ServiceCategory
	FAQs() []FAQ
	Business() BusinessInfo
}
