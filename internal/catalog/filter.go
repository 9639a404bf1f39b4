package catalog

import "strings"

// Query is the filter state a storefront sends with each request. Category
// and part scope the base set; selections and filters are exact-match
// property constraints; Text is a free-text search term.
type Query struct {
	Category   string
	Part       string
	Selections map[string]string
	Filters    map[string]string
	Text       string
}

// Filter resolves the base product set from the category/part context and
// applies selections, filters and the text query in turn. It is a pure
// function of (catalog, query): order-preserving, idempotent, and an empty
// query returns the full base set unchanged.
func (c *Catalog) Filter(q Query) []ProductView {
	category, part := c.resolveScope(q)

	views := c.baseSet(category, part)

	if part != nil && len(part.SelectionProperties) > 0 {
		views = filterByProperties(views, part.SelectionProperties, q.Selections)
	}

	if part != nil && len(part.FilterProperties) > 0 {
		views = filterByProperties(views, part.FilterProperties, q.Filters)
	}

	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		views = filterByText(views, text)
	}

	return views
}

// resolveScope finds the selected category and part. When a category is
// chosen without a part, the category's first part is implied.
func (c *Catalog) resolveScope(q Query) (*Category, *Part) {
	if q.Category == "" {
		return nil, nil
	}

	category, ok := c.Category(q.Category)
	if !ok {
		return nil, nil
	}

	if q.Part != "" {
		part, ok := category.Part(q.Part)
		if !ok {
			return category, nil
		}
		return category, part
	}

	if len(category.Parts) > 0 {
		return category, &category.Parts[0]
	}
	return category, nil
}

func (c *Catalog) baseSet(category *Category, part *Part) []ProductView {
	if category == nil {
		return c.views
	}

	var views []ProductView
	for i := range c.views {
		if c.views[i].Category != category.Name {
			continue
		}
		if part != nil && c.views[i].Brand != part.Name {
			continue
		}
		views = append(views, c.views[i])
	}
	return views
}

// filterByProperties retains products whose specification for every
// constrained property equals the requested value exactly. Properties with
// no (or an empty) requested value are unconstrained.
func filterByProperties(views []ProductView, properties []string, wanted map[string]string) []ProductView {
	if len(wanted) == 0 {
		return views
	}

	out := views[:0:0]
	for _, view := range views {
		match := true
		for _, property := range properties {
			want := wanted[property]
			if want == "" {
				continue
			}
			if view.Specifications[property] != want {
				match = false
				break
			}
		}
		if match {
			out = append(out, view)
		}
	}
	return out
}

// filterByText retains products where the lowercased term is a substring of
// the part code, any specification value, the part name, the category name,
// or the composed display name.
func filterByText(views []ProductView, text string) []ProductView {
	out := views[:0:0]
	for _, view := range views {
		if matchesText(view, text) {
			out = append(out, view)
		}
	}
	return out
}

func matchesText(view ProductView, text string) bool {
	if strings.Contains(strings.ToLower(view.SKU), text) {
		return true
	}
	for _, value := range view.Specifications {
		if strings.Contains(strings.ToLower(value), text) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(view.Brand), text) ||
		strings.Contains(strings.ToLower(view.Category), text) ||
		strings.Contains(strings.ToLower(view.Name), text)
}
