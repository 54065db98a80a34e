package cabfare

// Tier is a vehicle class with its own base fare and per-distance rate
type Tier int

const (
	Economy Tier = iota
	Sedan
	XL
)

type tierRate struct {
	name        string
	baseFare    float64
	perUnitRate float64
}

// tierRates is indexed by Tier and keeps the declaration order
var tierRates = [...]tierRate{
	Economy: {name: "Economy", baseFare: 50.0, perUnitRate: 12.0},
	Sedan:   {name: "Sedan", baseFare: 80.0, perUnitRate: 18.0},
	XL:      {name: "XL", baseFare: 120.0, perUnitRate: 25.0},
}

// Tiers returns all tiers in declaration order
func Tiers() []Tier {
	return []Tier{Economy, Sedan, XL}
}

// Valid reports whether t is one of the declared tiers
func (t Tier) Valid() bool {
	return t >= Economy && int(t) < len(tierRates)
}

func (t Tier) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return tierRates[t].name
}

// BaseFare is the flat component of the fare, independent of distance
func (t Tier) BaseFare() float64 {
	return tierRates[t].baseFare
}

// PerUnitRate is the fare contribution per distance unit traveled
func (t Tier) PerUnitRate() float64 {
	return tierRates[t].perUnitRate
}
