package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificationMap(t *testing.T) {
	entries := []SpecificationEntry{
		{PropertyName: "type", Value: "Standard"},
		{PropertyName: "finish", Value: "Chrome"},
		{PropertyName: "", Value: "ignored"},
		{PropertyName: "finish", Value: "Steel"},
	}

	specs := SpecificationMap(entries)

	assert.Len(t, specs, 2)
	assert.Equal(t, "Standard", specs["type"])
	assert.Equal(t, "Steel", specs["finish"], "duplicate names are last-write-wins")
}

func TestSpecificationMapNil(t *testing.T) {
	specs := SpecificationMap(nil)
	assert.NotNil(t, specs)
	assert.Empty(t, specs)
}
