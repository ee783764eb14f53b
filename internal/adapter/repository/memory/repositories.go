package memory

import (
	"context"
	"fmt"

	"github.com/simaogato/stockscope-backend/internal/domain"
)

// stockRepository implements domain.StockRepository
type stockRepository struct {
	store *Store
}

// NewStockRepository creates a stock repository over the store
func NewStockRepository(store *Store) domain.StockRepository {
	return &stockRepository{store: store}
}

// List returns every stock row ordered by symbol then date
func (r *stockRepository) List(ctx context.Context) ([]domain.StockRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.stocks, nil
}

// ListBySymbol returns the rows of one symbol ordered by date
func (r *stockRepository) ListBySymbol(ctx context.Context, symbol string) ([]domain.StockRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, ok := r.store.bySymbol[symbol]
	if !ok {
		return []domain.StockRecord{}, nil
	}
	return rows, nil
}

// companyRepository implements domain.CompanyRepository
type companyRepository struct {
	store *Store
}

// NewCompanyRepository creates a company repository over the store
func NewCompanyRepository(store *Store) domain.CompanyRepository {
	return &companyRepository{store: store}
}

// List returns every company in table order
func (r *companyRepository) List(ctx context.Context) ([]domain.CompanyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.companies, nil
}

// GetBySymbol retrieves a company by its ticker symbol
func (r *companyRepository) GetBySymbol(ctx context.Context, symbol string) (*domain.CompanyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := r.store.companyIdx[symbol]
	if !ok {
		return nil, fmt.Errorf("company %s %w", symbol, domain.ErrNotFound)
	}
	c := r.store.companies[i]
	return &c, nil
}

// FindByShortname returns the first company in table order with the short name
func (r *companyRepository) FindByShortname(ctx context.Context, shortname string) (*domain.CompanyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range r.store.companies {
		if c.Shortname == shortname {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("company %q %w", shortname, domain.ErrNotFound)
}

// ListSectors returns the distinct sectors, sorted
func (r *companyRepository) ListSectors(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.sectors, nil
}

// ListShortnames returns the distinct short names, sorted
func (r *companyRepository) ListShortnames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.shortnames, nil
}

// indexRepository implements domain.IndexRepository
type indexRepository struct {
	store *Store
}

// NewIndexRepository creates an index repository over the store
func NewIndexRepository(store *Store) domain.IndexRepository {
	return &indexRepository{store: store}
}

// List returns every index row ordered by date
func (r *indexRepository) List(ctx context.Context) ([]domain.IndexRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.index, nil
}
