package cabfare

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrEmpty               = errors.New("cannot be empty")
	ErrInvalidDistance     = errors.New("invalid distance format")
	ErrNonPositiveDistance = errors.New("distance must be positive")
	ErrInvalidTime         = errors.New("time must be in HH:MM format")
	ErrTimeOutOfRange      = errors.New("hour must be 0-23, minute must be 0-59")
)

// ValidateNonEmpty returns raw without surrounding whitespace
// it fails when nothing is left after trimming
func ValidateNonEmpty(field, raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("%s %w", field, ErrEmpty)
	}
	return value, nil
}

// ParseDistance parses a decimal distance which must be greater than zero
func ParseDistance(raw string) (float64, error) {
	distance, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return 0, fmt.Errorf("%q: %w", raw, ErrInvalidDistance)
	}
	if distance <= 0 {
		return 0, ErrNonPositiveDistance
	}
	return distance, nil
}

// ParseTime parses a 24-hour "H:M" time and returns it in the canonical "HH:MM" form
func ParseTime(raw string) (string, error) {
	hour, minute, err := splitTime(raw)
	if err != nil {
		return "", err
	}
	return formatTime(hour, minute), nil
}

func splitTime(raw string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: %w", raw, ErrInvalidTime)
	}

	hour, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", raw, ErrInvalidTime)
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", raw, ErrInvalidTime)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, ErrTimeOutOfRange
	}
	return hour, minute, nil
}

func formatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
