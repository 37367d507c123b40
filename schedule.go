package simulator

import (
	"fmt"
	"time"
)

// Schedule is the ordered list of actual contribution dates. Every date is a
// trading day of the series it was generated against, and the sequence is
// strictly increasing.
type Schedule []Date

// advance moves the schedule cursor to the next nominal contribution date.
// For the monthly and coarser frequencies it goes to the first of the month,
// adds the frequency's stride, then restores anchorDay as the day-of-month.
// Because anchorDay is capped at 28 the day exists in every month (February
// included), so drift from rolled trading days never compounds.
func (f Frequency) advance(d Date, anchorDay int) Date {
	switch f {
	case Daily:
		return d.Add(1)
	case Weekly:
		return d.Add(7)
	default:
		return NewDate(d.Year(), d.Month()+time.Month(f.months()), anchorDay)
	}
}

// GenerateSchedule computes the contribution dates between start and end for
// the given frequency, against the trading days of 'series'.
//
// The cursor starts at 'start'. A cursor date falling on a non-trading day is
// rolled forward to the next available trading day, and that rolled date is
// the contribution date for the period. The stop condition is checked on the
// nominal cursor before rolling, so a date rolled past 'end' is still
// included. An investor starting on the 29th-31st contributes on the 28th of
// later months (the day-of-month anchor is clamped to 28).
func GenerateSchedule(start, end Date, f Frequency, series *PriceSeries) (Schedule, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrequency, int(f))
	}
	if series == nil || series.Len() == 0 {
		return nil, ErrEmptyPriceSeries
	}

	anchor := start.Day()
	if anchor > 28 {
		anchor = 28
	}

	var schedule Schedule
	for cursor := start; !cursor.After(end); {
		rolled, ok := series.NextTradingDay(cursor)
		if !ok {
			// The series ends before the cursor, nothing left to buy.
			break
		}
		schedule = append(schedule, rolled)
		cursor = f.advance(rolled, anchor)
	}
	return schedule, nil
}
