package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestComputePriceStatic(t *testing.T) {
	product := &Product{
		PartCode: "LMUU-16",
		Price:    &Price{Value: 520, Valid: true, Static: true},
	}
	part := &Part{
		MutableProperties: []MutableProperty{
			{Name: "length", MinimumPayableUnit: ptr(500)},
		},
	}

	// Static prices ignore mutable-length configuration entirely
	assert.Equal(t, 520.0, ComputePrice(product, part))
}

func TestComputePricePerUnitMinimumPayable(t *testing.T) {
	product := &Product{
		PartCode: "SF-16",
		Price:    &Price{Value: 0.62, Valid: true, Static: false},
	}
	part := &Part{
		MutableProperties: []MutableProperty{
			{Name: "length", Default: ptr(1000), MinimumPayableUnit: ptr(500)},
		},
	}

	assert.InDelta(t, 0.62*500, ComputePrice(product, part), 1e-9)
}

func TestComputePricePerUnitDefaultFallback(t *testing.T) {
	product := &Product{
		Price: &Price{Value: 2, Valid: true, Static: false},
	}
	part := &Part{
		MutableProperties: []MutableProperty{
			{Name: "length", Default: ptr(1000)},
		},
	}

	assert.Equal(t, 2000.0, ComputePrice(product, part))
}

func TestComputePricePerUnitNoConfiguration(t *testing.T) {
	product := &Product{
		Price: &Price{Value: 150, Valid: true, Static: false},
	}

	assert.Equal(t, 150.0, ComputePrice(product, &Part{}))
	assert.Equal(t, 150.0, ComputePrice(product, nil))
}

func TestComputePriceInvalid(t *testing.T) {
	assert.Equal(t, 0.0, ComputePrice(nil, nil))
	assert.Equal(t, 0.0, ComputePrice(&Product{}, nil))
	assert.Equal(t, 0.0, ComputePrice(&Product{Price: &Price{Valid: false}}, nil))
}

func TestComputePriceScenario(t *testing.T) {
	// A 150/mm rod with a 2mm minimum payable unit quotes at 300
	product := &Product{
		PartCode: "LMUU-20",
		Price:    &Price{Value: 150, Valid: true, Static: false},
	}
	part := &Part{
		MutableProperties: []MutableProperty{
			{Name: "length", MinimumPayableUnit: ptr(2)},
		},
	}

	assert.Equal(t, 300.0, ComputePrice(product, part))
}
