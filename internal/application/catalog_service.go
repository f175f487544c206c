package application

import "github.com/brotherhood/barbershop_backend/internal/domain"

type CatalogService struct {
	repo domain.CatalogRepository
}

func NewCatalogService(repo domain.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) GetServiceCategories() []domain.ServiceCategory {
	return s.repo.ServiceCategories()
}

func (s *CatalogService) GetFAQs() []domain.FAQ {
	return s.repo.FAQs()
}

func (s *CatalogService) GetBusinessInfo() domain.BusinessInfo {
	return s.repo.Business()
}
