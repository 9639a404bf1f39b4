package service

import (
	"testing"

	"catalog-service/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func testCatalog() *catalog.Catalog {
	return catalog.New(catalog.Document{
		Categories: []catalog.Category{
			{
				Name: "Linear Motion",
				Parts: []catalog.Part{
					{
						Name:                "Linear Bushings",
						SelectionProperties: []string{"finish"},
						Products: []catalog.Product{
							{
								PartCode: "LMUU-12",
								Price:    &catalog.Price{Value: 450, Valid: true, Static: true},
								Specifications: []catalog.SpecificationEntry{
									{PropertyName: "finish", Value: "Steel"},
								},
							},
							{
								PartCode: "LMUU-16",
								Price:    &catalog.Price{Value: 520, Valid: true, Static: true},
								Specifications: []catalog.SpecificationEntry{
									{PropertyName: "finish", Value: "Chrome"},
								},
							},
						},
					},
					{
						Name: "Hardened Shafts",
						MutableProperties: []catalog.MutableProperty{
							{Name: "length", Unit: "mm", MinimumPayableUnit: ptr(500)},
						},
						Products: []catalog.Product{
							{
								PartCode: "SF-16",
								Price:    &catalog.Price{Value: 0.62, Valid: true, Static: false},
							},
						},
					},
				},
			},
		},
	})
}

func TestListProductsSortPriceAsc(t *testing.T) {
	s := NewCatalogService(testCatalog())

	views := s.ListProducts(ProductQuery{SortBy: SortPriceAsc})

	require.Len(t, views, 3)
	for i := 1; i < len(views); i++ {
		assert.LessOrEqual(t, views[i-1].Price, views[i].Price)
	}
}

func TestListProductsSortPriceDesc(t *testing.T) {
	s := NewCatalogService(testCatalog())

	views := s.ListProducts(ProductQuery{SortBy: SortPriceDesc})

	require.Len(t, views, 3)
	assert.Equal(t, "LMUU-16", views[0].ID)
}

func TestListProductsSortNameAsc(t *testing.T) {
	s := NewCatalogService(testCatalog())

	views := s.ListProducts(ProductQuery{SortBy: SortNameAsc})

	require.Len(t, views, 3)
	for i := 1; i < len(views); i++ {
		assert.LessOrEqual(t, views[i-1].Name, views[i].Name)
	}
}

func TestListProductsUnknownSortKeepsOrder(t *testing.T) {
	s := NewCatalogService(testCatalog())

	views := s.ListProducts(ProductQuery{SortBy: "price-sideways"})

	require.Len(t, views, 3)
	assert.Equal(t, "LMUU-12", views[0].ID)
	assert.Equal(t, "SF-16", views[2].ID)
}

func TestGetProduct(t *testing.T) {
	s := NewCatalogService(testCatalog())

	view, err := s.GetProduct("SF-16")
	require.NoError(t, err)
	assert.Equal(t, "Hardened Shafts", view.Brand)

	_, err = s.GetProduct("NOPE-1")
	assert.Error(t, err)
}

func TestFeaturedProducts(t *testing.T) {
	s := NewCatalogService(testCatalog())

	featured := s.FeaturedProducts(2)
	require.Len(t, featured, 2)
	assert.Equal(t, "LMUU-12", featured[0].ID)
	assert.Equal(t, "LMUU-16", featured[1].ID)

	assert.Len(t, s.FeaturedProducts(0), 3)
	assert.Len(t, s.FeaturedProducts(100), 3)
}

func TestCategoriesSummaries(t *testing.T) {
	s := NewCatalogService(testCatalog())

	categories := s.Categories()
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Parts, 2)

	bushings := categories[0].Parts[0]
	assert.Equal(t, "Linear Bushings", bushings.Name)
	assert.Equal(t, 2, bushings.ProductCount)
	assert.Equal(t, []string{"Steel", "Chrome"}, bushings.FacetValues["finish"])
}

func TestPartFacets(t *testing.T) {
	s := NewCatalogService(testCatalog())

	facets, err := s.PartFacets("Linear Motion", "Linear Bushings")
	require.NoError(t, err)
	assert.Equal(t, []string{"finish"}, facets.SelectionProperties)

	_, err = s.PartFacets("Linear Motion", "No Such Part")
	assert.Error(t, err)

	_, err = s.PartFacets("No Such Category", "Linear Bushings")
	assert.Error(t, err)
}

func TestBrands(t *testing.T) {
	s := NewCatalogService(testCatalog())
	assert.Equal(t, []string{"Linear Bushings", "Hardened Shafts"}, s.Brands())
}
