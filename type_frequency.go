package simulator

import (
	"errors"
	"fmt"
	"strings"
)

// Frequency enumerates the recognized contribution cadences.
type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
	Quarterly
	Semiannually
	Annually
)

// ErrInvalidFrequency is returned when a frequency value is outside the six
// recognized variants. It is fatal: the caller must not proceed.
var ErrInvalidFrequency = errors.New("invalid frequency")

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Semiannually:
		return "semiannually"
	case Annually:
		return "annually"
	default:
		return "invalid"
	}
}

// months returns the length of the frequency in calendar months,
// or 0 for the sub-monthly frequencies.
func (f Frequency) months() int {
	switch f {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case Semiannually:
		return 6
	case Annually:
		return 12
	default:
		return 0
	}
}

// Valid reports whether f is one of the six recognized variants.
func (f Frequency) Valid() bool { return f >= Daily && f <= Annually }

// ParseFrequency parses a frequency name, accepting both the adjective and
// the bare noun ("monthly" or "month").
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "semiannually", "semiannual", "halfyearly":
		return Semiannually, nil
	case "annually", "annual", "yearly", "year":
		return Annually, nil
	default:
		return Daily, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
}
