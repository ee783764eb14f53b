package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/simaogato/stockscope-backend/internal/domain"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// CatalogService serves the enumerated choice lists of the analysis views
type CatalogService struct {
	CompanyRepo  domain.CompanyRepository
	CompanyIndex domain.CompanyIndex
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(companyRepo domain.CompanyRepository, companyIndex domain.CompanyIndex) *CatalogService {
	return &CatalogService{
		CompanyRepo:  companyRepo,
		CompanyIndex: companyIndex,
	}
}

// Sectors lists the selectable sectors, sorted
func (s *CatalogService) Sectors(ctx context.Context) ([]string, error) {
	sectors, err := s.CompanyRepo.ListSectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sectors: %w", err)
	}
	return sectors, nil
}

// Shortnames lists the selectable company short names, sorted
func (s *CatalogService) Shortnames(ctx context.Context) ([]string, error) {
	names, err := s.CompanyRepo.ListShortnames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list company names: %w", err)
	}
	return names, nil
}

// Years lists the selectable years
func (s *CatalogService) Years() []int {
	return domain.Years()
}

// Months lists the selectable months
func (s *CatalogService) Months() []int {
	return domain.Months()
}

// SearchCompanies finds companies by symbol, name, sector or industry, best match first.
// A non-positive limit means DefaultSearchLimit; limits above MaxSearchLimit are capped.
func (s *CatalogService) SearchCompanies(ctx context.Context, query string, limit int) ([]domain.CompanyRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &domain.ValidationError{Message: "search query cannot be empty"}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	symbols, err := s.CompanyIndex.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	companies := make([]domain.CompanyRecord, 0, len(symbols))
	for _, symbol := range symbols {
		company, err := s.CompanyRepo.GetBySymbol(ctx, symbol)
		if err != nil {
			// The index is built from the same table, so a miss means a stale entry
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		companies = append(companies, *company)
	}

	return companies, nil
}
