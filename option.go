package cabfare

import "fmt"

// Option pairs a tier with its fare for the current request
type Option struct {
	Tier Tier
	Fare Price
}

func (o Option) String() string {
	return fmt.Sprintf("%s: %s", o.Tier, o.Fare)
}
