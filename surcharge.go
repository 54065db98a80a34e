package cabfare

// Surcharge is a proportional adjustment of a fare component
// triggered by the hour of day or the trip distance
type Surcharge int

const (
	PeakHour Surcharge = iota
	LateNight
	LongDistance
)

// Target is the fare component a surcharge multiplies
type Target int

const (
	TargetBaseFare Target = iota
	TargetPerUnitRate
)

type surchargeRule struct {
	code    string
	rate    float64
	target  Target
	message string
	applies func(hour int, distance float64) bool
}

// surchargeRules is indexed by Surcharge. Rules on the same target compound in this order.
var surchargeRules = [...]surchargeRule{
	PeakHour: {
		code:    "rush",
		rate:    0.15,
		target:  TargetPerUnitRate,
		message: "⏰ Prices increased due to peak hours",
		applies: func(hour int, _ float64) bool {
			return (hour >= 8 && hour <= 9) || (hour >= 17 && hour <= 18)
		},
	},
	LateNight: {
		code:    "midnight",
		rate:    0.15,
		target:  TargetBaseFare,
		message: "🌙 Prices increased due to late night travel",
		applies: func(hour int, _ float64) bool {
			return hour == 23 || (hour >= 0 && hour <= 4)
		},
	},
	LongDistance: {
		code:    "outstation",
		rate:    0.14,
		target:  TargetPerUnitRate,
		message: "🛣️ Prices increased due to outstation location",
		applies: func(_ int, distance float64) bool {
			return distance > longDistanceThreshold
		},
	},
}

// Surcharges returns all surcharges in application order
func Surcharges() []Surcharge {
	return []Surcharge{PeakHour, LateNight, LongDistance}
}

// Code is the short identifier of the surcharge
func (s Surcharge) Code() string {
	return surchargeRules[s].code
}

func (s Surcharge) String() string {
	return s.Code()
}

// Rate is the proportional increase, the targeted component is multiplied by 1+Rate
func (s Surcharge) Rate() float64 {
	return surchargeRules[s].rate
}

func (s Surcharge) Target() Target {
	return surchargeRules[s].target
}

// Message explains the surcharge to the passenger
func (s Surcharge) Message() string {
	return surchargeRules[s].message
}

// Applies reports whether the surcharge is due for a trip at the given hour and distance
func (s Surcharge) Applies(hour int, distance float64) bool {
	return surchargeRules[s].applies(hour, distance)
}

// Applicable returns the surcharges due for a trip, in application order
func Applicable(distance float64, hour int) []Surcharge {
	var applied []Surcharge
	for _, s := range Surcharges() {
		if s.Applies(hour, distance) {
			applied = append(applied, s)
		}
	}
	return applied
}
