package repository

import "testing"

func TestCatalogRepository_Business(t *testing.T) {
	b := NewCatalogRepository().Business()
	if b.WhatsAppURL != "https://wa.me/18953456578" {
		t.Fatalf("unexpected whatsapp url %q", b.WhatsAppURL)
	}
	if b.Hours.Sunday != "Closed" {
		t.Fatalf("unexpected sunday hours %q", b.Hours.Sunday)
	}
}

func TestCatalogRepository_ServiceCategoriesAreCopies(t *testing.T) {
	repo := NewCatalogRepository()
	first := repo.ServiceCategories()
	if len(first) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(first))
	}
	first[0].Services[0].Price = "$0"

	second := repo.ServiceCategories()
	if second[0].Services[0].Price != "$30" {
		t.Fatalf("catalog was mutated through a returned slice: %q", second[0].Services[0].Price)
	}
}

func TestCatalogRepository_FAQs(t *testing.T) {
	faqs := NewCatalogRepository().FAQs()
	if len(faqs) != 6 {
		t.Fatalf("expected 6 faqs, got %d", len(faqs))
	}
	for _, f := range faqs {
		if f.Question == "" || f.Answer == "" {
			t.Fatalf("empty faq entry %+v", f)
		}
	}
}
