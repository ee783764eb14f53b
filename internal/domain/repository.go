package domain

import "context"

// StockRepository defines read access to the daily stock price table
type StockRepository interface {
	// List returns every stock row, ordered by symbol then date
	List(ctx context.Context) ([]StockRecord, error)

	// ListBySymbol returns the rows of one symbol ordered by date
	// An unknown symbol yields an empty slice, not an error
	ListBySymbol(ctx context.Context, symbol string) ([]StockRecord, error)
}

// CompanyRepository defines read access to the company metadata table
type CompanyRepository interface {
	// List returns every company in table order
	List(ctx context.Context) ([]CompanyRecord, error)

	// GetBySymbol retrieves a company by its ticker symbol
	GetBySymbol(ctx context.Context, symbol string) (*CompanyRecord, error)

	// FindByShortname returns the first company in table order with the given short name
	FindByShortname(ctx context.Context, shortname string) (*CompanyRecord, error)

	// ListSectors returns the distinct sectors, sorted
	ListSectors(ctx context.Context) ([]string, error)

	// ListShortnames returns the distinct company short names, sorted
	ListShortnames(ctx context.Context) ([]string, error)
}

// IndexRepository defines read access to the S&P 500 index table
type IndexRepository interface {
	// List returns every index row ordered by date
	List(ctx context.Context) ([]IndexRecord, error)
}

// DatasetSource loads the three raw tables once at startup
type DatasetSource interface {
	LoadStocks(ctx context.Context) ([]StockRecord, error)
	LoadCompanies(ctx context.Context) ([]CompanyRecord, error)
	LoadIndex(ctx context.Context) ([]IndexRecord, error)
}

// CompanyIndex is a full-text index over company names, symbols and sectors
type CompanyIndex interface {
	// Search returns matching symbols, best match first, at most limit of them
	Search(ctx context.Context, query string, limit int) ([]string, error)
}
