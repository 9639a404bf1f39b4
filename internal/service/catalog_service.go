package service

import (
	"fmt"
	"sort"

	"catalog-service/internal/catalog"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// Sort orders accepted by ListProducts
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// CatalogService answers product queries against the loaded catalog
type CatalogService struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(cat *catalog.Catalog) *CatalogService {
	return &CatalogService{
		catalog: cat,
		logger:  util.GetLogger(),
	}
}

// ProductQuery carries the filter and ordering state of a product listing
// request
type ProductQuery struct {
	Category   string
	Part       string
	Selections map[string]string
	Filters    map[string]string
	Search     string
	SortBy     string
}

// ListProducts resolves the query against the catalog and applies the
// requested ordering. With no sort the catalog's document order is kept.
func (s *CatalogService) ListProducts(q ProductQuery) []catalog.ProductView {
	util.ProductQueriesTotal.Inc()

	views := s.catalog.Filter(catalog.Query{
		Category:   q.Category,
		Part:       q.Part,
		Selections: q.Selections,
		Filters:    q.Filters,
		Text:       q.Search,
	})

	views = sortProducts(views, q.SortBy)

	util.ProductQueryResults.Observe(float64(len(views)))
	return views
}

// sortProducts returns a sorted copy; stable so equal keys keep document order
func sortProducts(views []catalog.ProductView, sortBy string) []catalog.ProductView {
	if sortBy == "" {
		return views
	}

	sorted := make([]catalog.ProductView, len(views))
	copy(sorted, views)

	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	case SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name > sorted[j].Name })
	default:
		return views
	}

	return sorted
}

// GetProduct returns a single product by part code
func (s *CatalogService) GetProduct(id string) (catalog.ProductView, error) {
	view, ok := s.catalog.Product(id)
	if !ok {
		return catalog.ProductView{}, fmt.Errorf("product not found: %s", id)
	}
	return view, nil
}

// FeaturedProducts returns the first products of the catalog in document
// order, up to limit
func (s *CatalogService) FeaturedProducts(limit int) []catalog.ProductView {
	views := s.catalog.Products()
	if limit <= 0 || limit >= len(views) {
		return views
	}
	return views[:limit]
}

// Brands returns the distinct brand names in catalog order
func (s *CatalogService) Brands() []string {
	return s.catalog.Brands()
}

// CategorySummary describes a category and its parts for navigation
type CategorySummary struct {
	Name  string        `json:"name"`
	Parts []PartSummary `json:"parts"`
}

// PartSummary describes one part with its facet configuration
type PartSummary struct {
	Name                string              `json:"name"`
	ProductCount        int                 `json:"product_count"`
	SelectionProperties []string            `json:"selection_properties"`
	FilterProperties    []string            `json:"filter_properties"`
	FacetValues         map[string][]string `json:"facet_values"`
}

// Categories returns navigation summaries for every category
func (s *CatalogService) Categories() []CategorySummary {
	categories := s.catalog.Categories()
	out := make([]CategorySummary, 0, len(categories))
	for i := range categories {
		out = append(out, s.summarizeCategory(&categories[i]))
	}
	return out
}

// PartFacets returns the facet configuration for one part of a category
func (s *CatalogService) PartFacets(categoryName, partName string) (PartSummary, error) {
	cat, ok := s.catalog.Category(categoryName)
	if !ok {
		return PartSummary{}, fmt.Errorf("category not found: %s", categoryName)
	}

	part, ok := cat.Part(partName)
	if !ok {
		return PartSummary{}, fmt.Errorf("part not found: %s", partName)
	}

	return summarizePart(part), nil
}

func (s *CatalogService) summarizeCategory(cat *catalog.Category) CategorySummary {
	summary := CategorySummary{
		Name:  cat.Name,
		Parts: make([]PartSummary, 0, len(cat.Parts)),
	}
	for i := range cat.Parts {
		summary.Parts = append(summary.Parts, summarizePart(&cat.Parts[i]))
	}
	return summary
}

func summarizePart(part *catalog.Part) PartSummary {
	facets := make(map[string][]string)
	for _, property := range part.SelectionProperties {
		facets[property] = part.SpecValues(property)
	}
	for _, property := range part.FilterProperties {
		if _, ok := facets[property]; ok {
			continue
		}
		facets[property] = part.SpecValues(property)
	}

	sellable := 0
	for i := range part.Products {
		if part.Products[i].PartCode != "" {
			sellable++
		}
	}

	return PartSummary{
		Name:                part.Name,
		ProductCount:        sellable,
		SelectionProperties: part.SelectionProperties,
		FilterProperties:    part.FilterProperties,
		FacetValues:         facets,
	}
}
