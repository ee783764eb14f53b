package memory

import (
	"sort"

	"github.com/simaogato/stockscope-backend/internal/domain"
)

// Store holds the loaded tables, sorted and indexed once at construction.
// Every repository built on it shares the same slices read-only; callers must
// not modify returned records.
type Store struct {
	stocks     []domain.StockRecord
	bySymbol   map[string][]domain.StockRecord
	companies  []domain.CompanyRecord
	companyIdx map[string]int
	index      []domain.IndexRecord
	sectors    []string
	shortnames []string
}

// NewStore copies the dataset tables into a read-only store
func NewStore(ds *domain.Dataset) *Store {
	s := &Store{
		stocks:     make([]domain.StockRecord, len(ds.Stocks)),
		bySymbol:   make(map[string][]domain.StockRecord),
		companies:  make([]domain.CompanyRecord, len(ds.Companies)),
		companyIdx: make(map[string]int, len(ds.Companies)),
		index:      make([]domain.IndexRecord, len(ds.Index)),
	}

	copy(s.stocks, ds.Stocks)
	sort.SliceStable(s.stocks, func(i, j int) bool {
		if s.stocks[i].Symbol != s.stocks[j].Symbol {
			return s.stocks[i].Symbol < s.stocks[j].Symbol
		}
		return s.stocks[i].Date.Before(s.stocks[j].Date)
	})

	// Sub-slices are capped so an append by a caller can never overwrite a neighbour
	start := 0
	for i := 1; i <= len(s.stocks); i++ {
		if i == len(s.stocks) || s.stocks[i].Symbol != s.stocks[start].Symbol {
			s.bySymbol[s.stocks[start].Symbol] = s.stocks[start:i:i]
			start = i
		}
	}

	copy(s.companies, ds.Companies)
	sectorSet := make(map[string]bool)
	shortnameSet := make(map[string]bool)
	for i, c := range s.companies {
		if _, dup := s.companyIdx[c.Symbol]; !dup {
			s.companyIdx[c.Symbol] = i
		}
		if c.Sector != "" && !sectorSet[c.Sector] {
			sectorSet[c.Sector] = true
			s.sectors = append(s.sectors, c.Sector)
		}
		if !shortnameSet[c.Shortname] {
			shortnameSet[c.Shortname] = true
			s.shortnames = append(s.shortnames, c.Shortname)
		}
	}
	sort.Strings(s.sectors)
	sort.Strings(s.shortnames)

	copy(s.index, ds.Index)
	sort.SliceStable(s.index, func(i, j int) bool {
		return s.index[i].Date.Before(s.index[j].Date)
	})

	return s
}
