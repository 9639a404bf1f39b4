package catalog

// ComputePrice returns the displayable price for a product given its owning
// part. Static prices are returned as-is. Per-unit prices are multiplied by
// the chargeable length taken from the part's first mutable property:
// minimumPayableUnit when present, else the default length, else 1.
// A missing or unparsable price yields 0; the function never fails.
func ComputePrice(product *Product, part *Part) float64 {
	if product == nil || product.Price == nil || !product.Price.Valid {
		return 0
	}

	if product.Price.Static {
		return product.Price.Value
	}

	return product.Price.Value * chargeableLength(part)
}

func chargeableLength(part *Part) float64 {
	if part == nil || len(part.MutableProperties) == 0 {
		return 1
	}

	prop := part.MutableProperties[0]
	if prop.MinimumPayableUnit != nil {
		return *prop.MinimumPayableUnit
	}
	if prop.Default != nil {
		return *prop.Default
	}
	return 1
}
