package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDocument builds a small two-category tree shared across tests.
func testDocument() Document {
	return Document{
		Categories: []Category{
			{
				Name: "Linear Motion",
				Parts: []Part{
					{
						Name:                "Linear Bushings",
						SelectionProperties: []string{"type", "finish"},
						FilterProperties:    []string{"inner diameter"},
						Products: []Product{
							{
								PartCode: "LMUU-12",
								Price:    &Price{Value: 450, Valid: true, Static: true},
								Specifications: []SpecificationEntry{
									{PropertyName: "type", Value: "Standard"},
									{PropertyName: "finish", Value: "Steel"},
									{PropertyName: "inner diameter", Value: "12 mm"},
								},
							},
							{
								PartCode: "LMKUU-16",
								Price:    &Price{Value: 610, Valid: true, Static: true},
								Specifications: []SpecificationEntry{
									{PropertyName: "type", Value: "Flanged"},
									{PropertyName: "finish", Value: "Chrome"},
									{PropertyName: "inner diameter", Value: "16 mm"},
								},
							},
							{PartCode: ""}, // not sellable, dropped
						},
					},
					{
						Name:                "Hardened Shafts",
						SelectionProperties: []string{"diameter"},
						MutableProperties: []MutableProperty{
							{
								Name:               "length",
								Unit:               "mm",
								Default:            ptr(1000),
								MinimumPayableUnit: ptr(500),
							},
						},
						Products: []Product{
							{
								PartCode: "SF-16",
								Price:    &Price{Value: 0.62, Valid: true, Static: false, Unit: "mm"},
								Specifications: []SpecificationEntry{
									{PropertyName: "diameter", Value: "16 mm"},
								},
							},
						},
					},
				},
			},
			{
				Name: "Bearings",
				Parts: []Part{
					{
						Name:                "Deep Groove Ball Bearings",
						SelectionProperties: []string{"seal type"},
						Products: []Product{
							{
								PartCode:   "6204-ZZ",
								ImageAlias: "ball-bearing",
								Price:      &Price{Value: 180, Valid: true, Static: true},
								Specifications: []SpecificationEntry{
									{PropertyName: "seal type", Value: "Shielded"},
								},
							},
							{
								PartCode: "6204-2RS",
								Price:    &Price{Value: 195, Valid: true, Static: true},
								Specifications: []SpecificationEntry{
									{PropertyName: "seal type", Value: "Rubber Sealed"},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestFlattenDocumentOrder(t *testing.T) {
	views := Flatten(testDocument())

	require.Len(t, views, 5)
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	assert.Equal(t, []string{"LMUU-12", "LMKUU-16", "SF-16", "6204-ZZ", "6204-2RS"}, ids)
}

func TestFlattenDropsEmptyPartCode(t *testing.T) {
	views := Flatten(testDocument())
	for _, v := range views {
		assert.NotEmpty(t, v.ID)
	}
}

func TestFlattenStaticProductView(t *testing.T) {
	views := Flatten(testDocument())

	v := views[0]
	assert.Equal(t, "LMUU-12", v.ID)
	assert.Equal(t, "Linear Bushings (LMUU-12)", v.Name)
	assert.Equal(t, 450.0, v.Price)
	assert.Equal(t, v.Price, v.OriginalPrice)
	assert.Equal(t, "LMUU-12", v.SKU)
	assert.Equal(t, "Linear Bushings", v.Brand)
	assert.Equal(t, "Linear Motion", v.Category)
	assert.Equal(t, "type: Standard, finish: Steel, inner diameter: 12 mm", v.Description)
	assert.Equal(t, "Steel", v.Specifications["finish"])
	assert.Nil(t, v.PricePerUnit, "static products carry no per-unit price")
	assert.Nil(t, v.MinimumPayableUnit)
}

func TestFlattenPerUnitProductView(t *testing.T) {
	views := Flatten(testDocument())

	v := views[2]
	assert.Equal(t, "SF-16", v.ID)
	assert.Equal(t, 310.0, v.Price, "0.62/mm over the 500mm minimum payable unit")
	require.NotNil(t, v.PricePerUnit)
	assert.Equal(t, 0.62, *v.PricePerUnit)
	require.NotNil(t, v.MinimumPayableUnit)
	assert.Equal(t, 500.0, *v.MinimumPayableUnit)
	require.Len(t, v.MutableProperties, 1)
	assert.Equal(t, "length", v.MutableProperties[0].Name)
}

func TestDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "SF-16", displayName("SF-16", ""))
	assert.Equal(t, "Hardened Shafts (SF-16)", displayName("SF-16", "Hardened Shafts"))
}
