package catalog

import (
	"fmt"
	"math"
	"strings"
)

// ProductView is the flattened, sellable product record derived from the
// catalog tree. It carries everything a storefront or cart needs without
// further tree lookups.
type ProductView struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Price              float64           `json:"price"`
	OriginalPrice      float64           `json:"originalPrice"`
	SKU                string            `json:"sku"`
	Brand              string            `json:"brand"`
	Description        string            `json:"description"`
	Image              string            `json:"image"`
	Images             []string          `json:"images"`
	Category           string            `json:"category"`
	Specifications     map[string]string `json:"specifications"`
	MutableProperties  []MutableProperty `json:"mutableProperties"`
	PricePerUnit       *float64          `json:"pricePerUnit"`
	MinimumPayableUnit *float64          `json:"minimumPayableUnit"`
}

// Flatten walks the category/part/product tree once, in document order, and
// emits one view-model per product. Records without a part code are dropped.
// Output order (category, then part, then product) is a visible contract:
// featured-product consumers slice a prefix of the result.
func Flatten(doc Document) []ProductView {
	var views []ProductView

	for ci := range doc.Categories {
		category := &doc.Categories[ci]
		for pi := range category.Parts {
			part := &category.Parts[pi]
			for qi := range part.Products {
				product := &part.Products[qi]
				if product.PartCode == "" {
					continue
				}
				views = append(views, buildView(product, part, category))
			}
		}
	}

	return views
}

func buildView(product *Product, part *Part, category *Category) ProductView {
	specs := SpecificationMap(product.Specifications)
	price := round2(ComputePrice(product, part))
	media := ResolveMedia(product, part, category)

	var pricePerUnit *float64
	if product.Price != nil && !product.Price.Static && product.Price.Valid {
		v := product.Price.Value
		pricePerUnit = &v
	}

	return ProductView{
		ID:                 product.PartCode,
		Name:               displayName(product.PartCode, part.Name),
		Price:              price,
		OriginalPrice:      price,
		SKU:                product.PartCode,
		Brand:              part.Name,
		Description:        describeSpecs(product.Specifications),
		Image:              media.Image,
		Images:             media.Images,
		Category:           category.Name,
		Specifications:     specs,
		MutableProperties:  part.MutableProperties,
		PricePerUnit:       pricePerUnit,
		MinimumPayableUnit: lengthMinimumPayableUnit(part),
	}
}

// displayName composes "partName (partCode)", falling back to the bare part
// code when the part has no name.
func displayName(partCode, partName string) string {
	if partName != "" && partCode != "" {
		return fmt.Sprintf("%s (%s)", partName, partCode)
	}
	return partCode
}

// describeSpecs joins specification entries in document order so the
// description is deterministic.
func describeSpecs(entries []SpecificationEntry) string {
	pairs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.PropertyName == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s: %s", entry.PropertyName, entry.Value))
	}
	return strings.Join(pairs, ", ")
}

// lengthMinimumPayableUnit returns the minimum payable unit of the part's
// "length" property, nil when the part has no such configuration.
func lengthMinimumPayableUnit(part *Part) *float64 {
	if part == nil {
		return nil
	}
	for _, prop := range part.MutableProperties {
		if prop.Name == "length" {
			return prop.MinimumPayableUnit
		}
	}
	return nil
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}
