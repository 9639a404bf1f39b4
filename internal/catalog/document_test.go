package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	data := []byte(`{
		"categories": [
			{
				"categoryName": "Linear Motion",
				"part": [
					{
						"partName": "Hardened Shafts",
						"selectionProperties": ["diameter"],
						"filterProperties": ["tolerance"],
						"mutable_properties": [
							{
								"propertyName": "length",
								"unit": "mm",
								"default": "1000",
								"minimum": "100",
								"maximum": "4000",
								"multiplier": "100",
								"minimumPayableUnit": "500"
							}
						],
						"products": [
							{
								"partCode": "SF-16",
								"image": "",
								"price": {"value": "0.62", "static": "no", "unit": "mm"},
								"specifications": [
									{"propertyName": "diameter", "value": "16 mm"}
								]
							}
						]
					}
				]
			}
		]
	}`)

	doc, err := ParseDocument(data)
	require.NoError(t, err)
	require.Len(t, doc.Categories, 1)

	part := doc.Categories[0].Parts[0]
	require.Len(t, part.MutableProperties, 1)

	prop := part.MutableProperties[0]
	assert.Equal(t, "length", prop.Name)
	assert.Equal(t, "mm", prop.Unit)
	require.NotNil(t, prop.Default)
	assert.Equal(t, 1000.0, *prop.Default)
	require.NotNil(t, prop.MinimumPayableUnit)
	assert.Equal(t, 500.0, *prop.MinimumPayableUnit)

	product := part.Products[0]
	require.NotNil(t, product.Price)
	assert.True(t, product.Price.Valid)
	assert.False(t, product.Price.Static)
	assert.Equal(t, 0.62, product.Price.Value)
}

func TestParseDocumentStaticFlag(t *testing.T) {
	data := []byte(`{
		"categories": [
			{
				"categoryName": "Bearings",
				"part": [
					{
						"partName": "Deep Groove Ball Bearings",
						"products": [
							{"partCode": "A", "price": {"value": "100", "static": "yes"}},
							{"partCode": "B", "price": {"value": "100", "static": "Yes"}},
							{"partCode": "C", "price": {"value": "100", "static": "no"}},
							{"partCode": "D", "price": {"value": "100", "static": ""}}
						]
					}
				]
			}
		]
	}`)

	doc, err := ParseDocument(data)
	require.NoError(t, err)

	products := doc.Categories[0].Parts[0].Products
	assert.True(t, products[0].Price.Static)
	assert.True(t, products[1].Price.Static, "flag matching is case-insensitive")
	assert.False(t, products[2].Price.Static)
	assert.False(t, products[3].Price.Static)
}

func TestParseDocumentUnparsableNumbers(t *testing.T) {
	data := []byte(`{
		"categories": [
			{
				"categoryName": "Linear Motion",
				"part": [
					{
						"partName": "Hardened Shafts",
						"mutable_properties": [
							{"propertyName": "length", "default": "n/a", "minimumPayableUnit": ""}
						],
						"products": [
							{"partCode": "SF-12", "price": {"value": "call us", "static": "no"}}
						]
					}
				]
			}
		]
	}`)

	doc, err := ParseDocument(data)
	require.NoError(t, err)

	prop := doc.Categories[0].Parts[0].MutableProperties[0]
	assert.Nil(t, prop.Default)
	assert.Nil(t, prop.MinimumPayableUnit)

	price := doc.Categories[0].Parts[0].Products[0].Price
	require.NotNil(t, price)
	assert.False(t, price.Valid)
	assert.Equal(t, 0.0, ComputePrice(&doc.Categories[0].Parts[0].Products[0], nil))
}

func TestParseDocumentMalformed(t *testing.T) {
	_, err := ParseDocument([]byte("{not json"))
	assert.Error(t, err)
}
