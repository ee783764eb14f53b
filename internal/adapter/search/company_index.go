package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/simaogato/stockscope-backend/internal/domain"
)

// companyDoc is the indexed view of a company; the document ID is the symbol
type companyDoc struct {
	Symbol    string `json:"symbol"`
	Shortname string `json:"shortname"`
	Longname  string `json:"longname"`
	Sector    string `json:"sector"`
	Industry  string `json:"industry"`
}

// CompanyIndex implements domain.CompanyIndex with an in-memory bleve index
type CompanyIndex struct {
	index bleve.Index
}

// NewCompanyIndex builds an in-memory index over the companies
func NewCompanyIndex(companies []domain.CompanyRecord) (*CompanyIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create company index: %w", err)
	}

	batch := index.NewBatch()
	for _, c := range companies {
		doc := companyDoc{
			Symbol:    c.Symbol,
			Shortname: c.Shortname,
			Longname:  c.Longname,
			Sector:    c.Sector,
			Industry:  c.Industry,
		}
		if err := batch.Index(c.Symbol, doc); err != nil {
			return nil, fmt.Errorf("failed to add %s to batch: %w", c.Symbol, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to execute batch: %w", err)
	}

	return &CompanyIndex{index: index}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	companyMapping := bleve.NewDocumentMapping()

	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Store = false
	textFieldMapping.Index = true
	for _, field := range []string{"symbol", "shortname", "longname", "sector", "industry"} {
		companyMapping.AddFieldMappingsAt(field, textFieldMapping)
	}

	indexMapping.DefaultMapping = companyMapping
	return indexMapping
}

// Search matches whole words anywhere and treats the last word as a prefix,
// so partially typed names still find their company
func (c *CompanyIndex) Search(ctx context.Context, query string, limit int) ([]string, error) {
	q := bleve.NewDisjunctionQuery(bleve.NewMatchQuery(query))
	if words := strings.Fields(strings.ToLower(query)); len(words) > 0 {
		q.AddQuery(bleve.NewPrefixQuery(words[len(words)-1]))
	}

	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := c.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("company search failed: %w", err)
	}

	symbols := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		symbols = append(symbols, hit.ID)
	}
	return symbols, nil
}

// Close releases the index
func (c *CompanyIndex) Close() error {
	return c.index.Close()
}
