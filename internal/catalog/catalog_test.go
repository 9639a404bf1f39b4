package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogProductLookup(t *testing.T) {
	cat := New(testDocument())

	view, ok := cat.Product("SF-16")
	require.True(t, ok)
	assert.Equal(t, "Hardened Shafts", view.Brand)

	_, ok = cat.Product("NOPE-1")
	assert.False(t, ok)
}

func TestCatalogLookupContext(t *testing.T) {
	cat := New(testDocument())

	ctx, ok := cat.Lookup("6204-ZZ")
	require.True(t, ok)
	assert.Equal(t, "Deep Groove Ball Bearings", ctx.Part.Name)
	assert.Equal(t, "Bearings", ctx.Category.Name)
}

func TestCatalogBrands(t *testing.T) {
	cat := New(testDocument())

	brands := cat.Brands()

	assert.Equal(t, []string{"Linear Bushings", "Hardened Shafts", "Deep Groove Ball Bearings"}, brands)
}

func TestPartSpecValues(t *testing.T) {
	cat := New(testDocument())

	category, ok := cat.Category("Linear Motion")
	require.True(t, ok)
	part, ok := category.Part("Linear Bushings")
	require.True(t, ok)

	assert.Equal(t, []string{"Steel", "Chrome"}, part.SpecValues("finish"))
	assert.Equal(t, []string{"Standard", "Flanged"}, part.SpecValues("type"))
	assert.Empty(t, part.SpecValues("no such property"))
}
