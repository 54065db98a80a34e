package cabfare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTiers(t *testing.T) {
	tests := []struct {
		tier        Tier
		name        string
		baseFare    float64
		perUnitRate float64
	}{
		{tier: Economy, name: "Economy", baseFare: 50.0, perUnitRate: 12.0},
		{tier: Sedan, name: "Sedan", baseFare: 80.0, perUnitRate: 18.0},
		{tier: XL, name: "XL", baseFare: 120.0, perUnitRate: 25.0},
	}

	assert.Equal(t, []Tier{Economy, Sedan, XL}, Tiers())
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.True(t, test.tier.Valid())
			assert.Equal(t, test.name, test.tier.String())
			assert.Equal(t, test.baseFare, test.tier.BaseFare())
			assert.Equal(t, test.perUnitRate, test.tier.PerUnitRate())
		})
	}
}

func TestTier_invalid(t *testing.T) {
	assert.False(t, Tier(-1).Valid())
	assert.False(t, Tier(3).Valid())
	assert.Equal(t, "Unknown", Tier(3).String())
}
