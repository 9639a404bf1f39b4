package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	cat := New(testDocument())

	views := cat.Filter(Query{})

	assert.Len(t, views, cat.Len())
	assert.Equal(t, cat.Products(), views)
}

func TestFilterCategoryScopeImpliesFirstPart(t *testing.T) {
	cat := New(testDocument())

	// Category without a part scopes to the category's first part
	views := cat.Filter(Query{Category: "Linear Motion"})

	require.Len(t, views, 2)
	for _, v := range views {
		assert.Equal(t, "Linear Bushings", v.Brand)
	}
}

func TestFilterPartScope(t *testing.T) {
	cat := New(testDocument())

	views := cat.Filter(Query{Category: "Linear Motion", Part: "Hardened Shafts"})

	require.Len(t, views, 1)
	assert.Equal(t, "SF-16", views[0].ID)
}

func TestFilterSelections(t *testing.T) {
	cat := New(testDocument())

	views := cat.Filter(Query{
		Category:   "Linear Motion",
		Part:       "Linear Bushings",
		Selections: map[string]string{"finish": "Chrome"},
	})

	require.Len(t, views, 1)
	assert.Equal(t, "LMKUU-16", views[0].ID)
}

func TestFilterSelectionsAreExactMatch(t *testing.T) {
	cat := New(testDocument())

	views := cat.Filter(Query{
		Category:   "Linear Motion",
		Part:       "Linear Bushings",
		Selections: map[string]string{"finish": "chrome"},
	})

	assert.Empty(t, views, "selection matching is case-sensitive")
}

func TestFilterEmptySelectionValueUnconstrained(t *testing.T) {
	cat := New(testDocument())

	views := cat.Filter(Query{
		Category:   "Linear Motion",
		Part:       "Linear Bushings",
		Selections: map[string]string{"finish": ""},
	})

	assert.Len(t, views, 2)
}

func TestFilterCombinedSelectionsAnd(t *testing.T) {
	cat := New(testDocument())

	views := cat.Filter(Query{
		Category: "Linear Motion",
		Part:     "Linear Bushings",
		Selections: map[string]string{
			"type":   "Flanged",
			"finish": "Steel",
		},
	})

	assert.Empty(t, views, "all constrained properties must match")
}

func TestFilterTextSearch(t *testing.T) {
	cat := New(testDocument())

	// Case-insensitive substring over part code
	views := cat.Filter(Query{Text: "lmk"})
	require.Len(t, views, 1)
	assert.Equal(t, "LMKUU-16", views[0].ID)

	// Matches part (brand) name
	views = cat.Filter(Query{Text: "bushing"})
	assert.Len(t, views, 2)

	// Matches specification values
	views = cat.Filter(Query{Text: "rubber"})
	require.Len(t, views, 1)
	assert.Equal(t, "6204-2RS", views[0].ID)

	// Matches category name
	views = cat.Filter(Query{Text: "bearings"})
	assert.Len(t, views, 2)
}

func TestFilterTextWithinScope(t *testing.T) {
	cat := New(testDocument())

	views := cat.Filter(Query{
		Category: "Linear Motion",
		Part:     "Linear Bushings",
		Text:     "16 mm",
	})

	require.Len(t, views, 1)
	assert.Equal(t, "LMKUU-16", views[0].ID)
}

func TestFilterIdempotent(t *testing.T) {
	cat := New(testDocument())
	q := Query{
		Category:   "Linear Motion",
		Part:       "Linear Bushings",
		Selections: map[string]string{"type": "Standard"},
		Text:       "steel",
	}

	first := cat.Filter(q)
	second := cat.Filter(q)

	assert.Equal(t, first, second)
}

func TestFilterUnknownScope(t *testing.T) {
	cat := New(testDocument())

	// Unknown category falls back to the full base set
	views := cat.Filter(Query{Category: "No Such Category"})
	assert.Len(t, views, cat.Len())
}
