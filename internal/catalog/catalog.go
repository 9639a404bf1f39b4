package catalog

import (
	"fmt"
	"os"
)

// Context locates a product's owning part and category without re-scanning
// the tree.
type Context struct {
	Part     *Part
	Category *Category
}

// Catalog wraps an immutable catalog document with its flattened product
// list and a part-code index, both built once at load time.
type Catalog struct {
	doc       Document
	views     []ProductView
	viewIndex map[string]int
	index     map[string]Context
}

// New builds a catalog from a typed document: one flattening pass plus a
// product-id index shared by lookups and the facet filter.
func New(doc Document) *Catalog {
	c := &Catalog{
		doc:   doc,
		views: Flatten(doc),
		index: make(map[string]Context),
	}

	c.viewIndex = make(map[string]int, len(c.views))
	for i := range c.views {
		c.viewIndex[c.views[i].ID] = i
	}

	for ci := range c.doc.Categories {
		category := &c.doc.Categories[ci]
		for pi := range category.Parts {
			part := &category.Parts[pi]
			for qi := range part.Products {
				product := &part.Products[qi]
				if product.PartCode == "" {
					continue
				}
				c.index[product.PartCode] = Context{Part: part, Category: category}
			}
		}
	}

	return c
}

// Parse decodes catalog JSON and builds the catalog.
func Parse(data []byte) (*Catalog, error) {
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return New(doc), nil
}

// Load reads and parses the catalog document at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Products returns the flattened product list in document order. Callers
// must treat it as read-only.
func (c *Catalog) Products() []ProductView {
	return c.views
}

// Len reports the number of sellable products.
func (c *Catalog) Len() int {
	return len(c.views)
}

// Product returns the view-model for a part code.
func (c *Catalog) Product(id string) (ProductView, bool) {
	i, ok := c.viewIndex[id]
	if !ok {
		return ProductView{}, false
	}
	return c.views[i], true
}

// Lookup returns the owning part and category for a part code.
func (c *Catalog) Lookup(id string) (Context, bool) {
	ctx, ok := c.index[id]
	return ctx, ok
}

// Categories returns the catalog's categories in document order.
func (c *Catalog) Categories() []Category {
	return c.doc.Categories
}

// Category finds a category by name.
func (c *Catalog) Category(name string) (*Category, bool) {
	for i := range c.doc.Categories {
		if c.doc.Categories[i].Name == name {
			return &c.doc.Categories[i], true
		}
	}
	return nil, false
}

// Brands returns the distinct part names in first-seen document order. Part
// names double as brands in the storefront.
func (c *Catalog) Brands() []string {
	seen := make(map[string]bool)
	var brands []string
	for _, category := range c.doc.Categories {
		for _, part := range category.Parts {
			if part.Name == "" || seen[part.Name] {
				continue
			}
			seen[part.Name] = true
			brands = append(brands, part.Name)
		}
	}
	return brands
}

// Part finds a part by name within a category.
func (cat *Category) Part(name string) (*Part, bool) {
	for i := range cat.Parts {
		if cat.Parts[i].Name == name {
			return &cat.Parts[i], true
		}
	}
	return nil, false
}

// SpecValues returns the distinct values of a specification property across
// the part's products, in first-seen order. Used to build facet options.
func (p *Part) SpecValues(property string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, product := range p.Products {
		for _, entry := range product.Specifications {
			if entry.PropertyName != property || entry.Value == "" {
				continue
			}
			if seen[entry.Value] {
				continue
			}
			seen[entry.Value] = true
			values = append(values, entry.Value)
		}
	}
	return values
}
