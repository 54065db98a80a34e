package cabfare

import "math"

// BookingRequest holds a validated trip request. It is immutable once created.
type BookingRequest struct {
	passenger   string
	destination string
	distance    float64
	hour        int
	minute      int
}

// NewBookingRequest creates a BookingRequest out of already parsed input
// the invariants are checked again so a request is never half valid
func NewBookingRequest(passenger, destination string, distance float64, at string) (BookingRequest, error) {
	passenger, err := ValidateNonEmpty("passenger", passenger)
	if err != nil {
		return BookingRequest{}, err
	}

	destination, err = ValidateNonEmpty("destination", destination)
	if err != nil {
		return BookingRequest{}, err
	}

	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return BookingRequest{}, ErrInvalidDistance
	}
	if distance <= 0 {
		return BookingRequest{}, ErrNonPositiveDistance
	}

	hour, minute, err := splitTime(at)
	if err != nil {
		return BookingRequest{}, err
	}

	return BookingRequest{
		passenger:   passenger,
		destination: destination,
		distance:    distance,
		hour:        hour,
		minute:      minute,
	}, nil
}

func (r BookingRequest) Passenger() string {
	return r.passenger
}

func (r BookingRequest) Destination() string {
	return r.destination
}

func (r BookingRequest) Distance() float64 {
	return r.distance
}

// Hour is the hour of day the trip is booked for, the only time component pricing looks at
func (r BookingRequest) Hour() int {
	return r.hour
}

func (r BookingRequest) Minute() int {
	return r.minute
}

// Time returns the booking time as "HH:MM"
func (r BookingRequest) Time() string {
	return formatTime(r.hour, r.minute)
}
