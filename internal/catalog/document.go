package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Wire-format types for the catalog JSON document. Numeric fields arrive as
// strings and the static flag as "yes"/"no"; both are converted to typed
// values once at the ingestion boundary (see Parse).

type rawDocument struct {
	Categories []rawCategory `json:"categories"`
}

type rawCategory struct {
	CategoryName string    `json:"categoryName"`
	Parts        []rawPart `json:"part"`
}

type rawPart struct {
	PartName            string               `json:"partName"`
	Products            []rawProduct         `json:"products"`
	MutableProperties   []rawMutableProperty `json:"mutable_properties"`
	SelectionProperties []string             `json:"selectionProperties"`
	FilterProperties    []string             `json:"filterProperties"`
}

type rawProduct struct {
	PartCode       string               `json:"partCode"`
	Image          string               `json:"image"`
	Price          *rawPrice            `json:"price"`
	Specifications []SpecificationEntry `json:"specifications"`
}

type rawPrice struct {
	Value  string `json:"value"`
	Static string `json:"static"`
	Unit   string `json:"unit"`
}

type rawMutableProperty struct {
	PropertyName       string `json:"propertyName"`
	Unit               string `json:"unit"`
	Default            string `json:"default"`
	Minimum            string `json:"minimum"`
	Maximum            string `json:"maximum"`
	Multiplier         string `json:"multiplier"`
	MinimumPayableUnit string `json:"minimumPayableUnit"`
}

// SpecificationEntry is a single propertyName/value pair on a raw product.
type SpecificationEntry struct {
	PropertyName string `json:"propertyName"`
	Value        string `json:"value"`
}

// Document is the typed, immutable form of the catalog tree.
type Document struct {
	Categories []Category
}

// Category groups parts under a display name unique within the document.
type Category struct {
	Name  string
	Parts []Part
}

// Part groups sellable products sharing mutable-length configuration and
// filter/selection metadata.
type Part struct {
	Name                string
	Products            []Product
	MutableProperties   []MutableProperty
	SelectionProperties []string
	FilterProperties    []string
}

// Product is a sellable catalog entry identified by its part code.
type Product struct {
	PartCode       string
	ImageAlias     string
	Price          *Price
	Specifications []SpecificationEntry
}

// Price carries the parsed pricing mode for a product. Valid is false when
// the wire value did not parse as a number.
type Price struct {
	Value  float64
	Valid  bool
	Static bool
	Unit   string
}

// MutableProperty describes a buyer-configurable dimension such as length.
// Numeric fields are nil when absent or unparsable on the wire.
type MutableProperty struct {
	Name               string   `json:"propertyName"`
	Unit               string   `json:"unit,omitempty"`
	Default            *float64 `json:"default,omitempty"`
	Minimum            *float64 `json:"minimum,omitempty"`
	Maximum            *float64 `json:"maximum,omitempty"`
	Multiplier         *float64 `json:"multiplier,omitempty"`
	MinimumPayableUnit *float64 `json:"minimumPayableUnit,omitempty"`
}

// ParseDocument decodes the catalog JSON and converts string-encoded numerics
// and the yes/no static flag into typed fields. Missing arrays degrade to
// empty slices; unparsable numbers become nil/invalid, never an error.
func ParseDocument(data []byte) (Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("failed to decode catalog document: %w", err)
	}

	doc := Document{Categories: make([]Category, 0, len(raw.Categories))}
	for _, rc := range raw.Categories {
		category := Category{
			Name:  rc.CategoryName,
			Parts: make([]Part, 0, len(rc.Parts)),
		}

		for _, rp := range rc.Parts {
			part := Part{
				Name:                rp.PartName,
				Products:            make([]Product, 0, len(rp.Products)),
				MutableProperties:   make([]MutableProperty, 0, len(rp.MutableProperties)),
				SelectionProperties: rp.SelectionProperties,
				FilterProperties:    rp.FilterProperties,
			}

			for _, rm := range rp.MutableProperties {
				part.MutableProperties = append(part.MutableProperties, MutableProperty{
					Name:               rm.PropertyName,
					Unit:               rm.Unit,
					Default:            parseOptionalNumber(rm.Default),
					Minimum:            parseOptionalNumber(rm.Minimum),
					Maximum:            parseOptionalNumber(rm.Maximum),
					Multiplier:         parseOptionalNumber(rm.Multiplier),
					MinimumPayableUnit: parseOptionalNumber(rm.MinimumPayableUnit),
				})
			}

			for _, rprod := range rp.Products {
				part.Products = append(part.Products, Product{
					PartCode:       rprod.PartCode,
					ImageAlias:     rprod.Image,
					Price:          parsePrice(rprod.Price),
					Specifications: rprod.Specifications,
				})
			}

			category.Parts = append(category.Parts, part)
		}

		doc.Categories = append(doc.Categories, category)
	}

	return doc, nil
}

func parsePrice(raw *rawPrice) *Price {
	if raw == nil {
		return nil
	}

	price := &Price{
		Static: strings.EqualFold(strings.TrimSpace(raw.Static), "yes"),
		Unit:   raw.Unit,
	}

	if v, ok := parseNumber(raw.Value); ok {
		price.Value = v
		price.Valid = true
	}

	return price
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseOptionalNumber(s string) *float64 {
	if v, ok := parseNumber(s); ok {
		return &v
	}
	return nil
}
