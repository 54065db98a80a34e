/*
	Package cabfare provides the pricing rules of a cab booking console. It estimates the fare of
	each vehicle tier for a trip given its distance and the hour of day the trip is booked for,
	applying the time-of-day and distance surcharges, and validates the raw booking input the
	console collects before any fare is computed.
*/
package cabfare

import (
	"errors"
	"fmt"
)

// Price is a type for price value
type Price float64

// String renders the price in rupees with two decimals
func (p Price) String() string {
	return fmt.Sprintf("₹%.2f", float64(p))
}

const (
	// DefaultCacheSize bounds the number of memoized fares
	DefaultCacheSize = 128

	// longDistanceThreshold is the distance past which a trip counts as out of town
	longDistanceThreshold = 200.0
)

type Config struct {
	CacheSize int
}

// DefaultConfig returns the configuration the console runs with
func DefaultConfig() *Config {
	return &Config{
		CacheSize: DefaultCacheSize,
	}
}

func (c Config) Validate() error {
	switch {
	case c.CacheSize <= 0:
		return errors.New("CacheSize should be greater than 0")
	}

	return nil
}
