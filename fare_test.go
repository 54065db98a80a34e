package cabfare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		hasError bool
	}{
		{
			name:     "ok",
			config:   &Config{CacheSize: 16},
			hasError: false,
		},
		{
			name:     "default",
			config:   DefaultConfig(),
			hasError: false,
		},
		{
			name:     "cache size is zero - error",
			config:   &Config{CacheSize: 0},
			hasError: true,
		},
		{
			name:     "cache size is negative - error",
			config:   &Config{CacheSize: -1},
			hasError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Validate()
			assert.Equal(t, test.hasError, err != nil)
		})
	}
}

func TestPrice_String(t *testing.T) {
	assert.Equal(t, "₹188.00", Price(187.99999999999997).String())
	assert.Equal(t, "₹8688.00", Price(8688).String())
}

func TestOption_String(t *testing.T) {
	assert.Equal(t, "Sedan: ₹980.00", Option{Tier: Sedan, Fare: 980}.String())
}
