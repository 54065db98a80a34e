package cabfare

// Fare prices a trip of the given distance booked at the given hour on tier t.
// Every applicable surcharge multiplies its target component by 1+rate, in
// application order, before the fare is summed up as base + distance*rate.
func Fare(t Tier, distance float64, hour int) Price {
	baseFare := t.BaseFare()
	perUnitRate := t.PerUnitRate()

	for _, s := range Applicable(distance, hour) {
		switch s.Target() {
		case TargetBaseFare:
			baseFare *= 1 + s.Rate()
		case TargetPerUnitRate:
			perUnitRate *= 1 + s.Rate()
		}
	}

	return Price(baseFare + distance*perUnitRate)
}

// fareKey identifies a memoized fare
type fareKey struct {
	tier     Tier
	distance float64
	hour     int
}

// Calculator prices trips for all tiers and remembers the fares it has computed.
// It is not safe for concurrent use.
type Calculator struct {
	conf  *Config
	cache map[fareKey]Price
}

// NewCalculator creates a Calculator
func NewCalculator(config *Config) (*Calculator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Calculator{
		conf:  config,
		cache: make(map[fareKey]Price, config.CacheSize),
	}, nil
}

// Price returns the fare of tier t, the same value Fare returns
func (c *Calculator) Price(t Tier, distance float64, hour int) Price {
	key := fareKey{tier: t, distance: distance, hour: hour}
	if p, ok := c.cache[key]; ok {
		return p
	}

	// the cache is reset once full, fares are cheap to recompute
	if len(c.cache) >= c.conf.CacheSize {
		c.cache = make(map[fareKey]Price, c.conf.CacheSize)
	}

	p := Fare(t, distance, hour)
	c.cache[key] = p
	return p
}

// Options prices the trip on every tier, in tier declaration order
func (c *Calculator) Options(distance float64, hour int) []Option {
	tiers := Tiers()
	options := make([]Option, 0, len(tiers))
	for _, t := range tiers {
		options = append(options, Option{
			Tier: t,
			Fare: c.Price(t, distance, hour),
		})
	}
	return options
}

// SurchargeMessages explains every surcharge due for the trip.
// It returns an empty slice when the trip is priced at the standard rates.
func (c *Calculator) SurchargeMessages(distance float64, hour int) []string {
	applied := Applicable(distance, hour)
	messages := make([]string, 0, len(applied))
	for _, s := range applied {
		messages = append(messages, s.Message())
	}
	return messages
}
