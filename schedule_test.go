package simulator

import (
	"errors"
	"slices"
	"testing"
)

func TestGenerateSchedule_monthlyRollsOverWeekends(t *testing.T) {
	// Weekday trading days over Q1 2020: Feb 1st and Mar 1st are weekend
	// days and must roll forward to the next trading weekday.
	s := weekdaySeries(t, NewDate(2020, 1, 1), NewDate(2020, 3, 31), USD(100))

	got, err := GenerateSchedule(NewDate(2020, 1, 1), NewDate(2020, 3, 31), Monthly, s)
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	want := Schedule{NewDate(2020, 1, 1), NewDate(2020, 2, 3), NewDate(2020, 3, 2)}
	if !slices.Equal(got, want) {
		t.Errorf("schedule = %v, want %v", got, want)
	}
}

func TestGenerateSchedule_properties(t *testing.T) {
	s := weekdaySeries(t, NewDate(2019, 1, 2), NewDate(2021, 12, 31), USD(42))

	for _, f := range []Frequency{Daily, Weekly, Monthly, Quarterly, Semiannually, Annually} {
		t.Run(f.String(), func(t *testing.T) {
			start, end := NewDate(2019, 1, 15), NewDate(2021, 6, 30)
			got, err := GenerateSchedule(start, end, f, s)
			if err != nil {
				t.Fatalf("GenerateSchedule: %v", err)
			}
			if len(got) == 0 {
				t.Fatal("empty schedule")
			}
			for i, d := range got {
				if !s.Has(d) {
					t.Errorf("schedule[%d] = %v is not a trading day", i, d)
				}
				if i > 0 && !d.After(got[i-1]) {
					t.Errorf("schedule not strictly increasing at %d: %v, %v", i, got[i-1], d)
				}
			}
			// Idempotence: no hidden state between runs.
			again, err := GenerateSchedule(start, end, f, s)
			if err != nil {
				t.Fatalf("GenerateSchedule (second run): %v", err)
			}
			if !slices.Equal(got, again) {
				t.Error("two identical runs produced different schedules")
			}
		})
	}
}

func TestGenerateSchedule_monthlyKeepsDayOfMonth(t *testing.T) {
	// With a start day <= 28, every nominal date falls on the same day of
	// the month. Daily trading days keep rolling out of the picture.
	points := make([]PricePoint, 400)
	for i := range points {
		points[i] = PricePoint{Date: NewDate(2020, 1, 1).Add(i), Price: USD(100)}
	}
	s, err := NewPriceSeries(points)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}

	got, err := GenerateSchedule(NewDate(2020, 1, 15), NewDate(2020, 12, 31), Monthly, s)
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("len(schedule) = %d, want 12", len(got))
	}
	for i, d := range got {
		if d.Day() != 15 {
			t.Errorf("schedule[%d] = %v, want day of month 15", i, d)
		}
	}
}

func TestGenerateSchedule_clampsLateStartDays(t *testing.T) {
	points := make([]PricePoint, 200)
	for i := range points {
		points[i] = PricePoint{Date: NewDate(2020, 1, 1).Add(i), Price: USD(100)}
	}
	s, err := NewPriceSeries(points)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}

	// Starting on the 31st: later contributions land on the 28th, so that
	// the anniversary exists in every month, February included.
	got, err := GenerateSchedule(NewDate(2020, 1, 31), NewDate(2020, 4, 30), Monthly, s)
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	want := Schedule{NewDate(2020, 1, 31), NewDate(2020, 2, 28), NewDate(2020, 3, 28), NewDate(2020, 4, 28)}
	if !slices.Equal(got, want) {
		t.Errorf("schedule = %v, want %v", got, want)
	}
}

func TestGenerateSchedule_boundaries(t *testing.T) {
	s := weekdaySeries(t, NewDate(2020, 1, 1), NewDate(2020, 3, 31), USD(100))

	t.Run("start equals end on a trading day", func(t *testing.T) {
		on := NewDate(2020, 1, 2)
		got, err := GenerateSchedule(on, on, Monthly, s)
		if err != nil {
			t.Fatalf("GenerateSchedule: %v", err)
		}
		if len(got) != 1 || got[0] != on {
			t.Errorf("schedule = %v, want [%v]", got, on)
		}
	})

	t.Run("roll past end is still included", func(t *testing.T) {
		// Nominal date 2020-02-29 (Saturday) is before end 2020-03-01 but
		// rolls to 2020-03-02: the contribution is kept because the stop
		// check applies to the nominal cursor, before rolling.
		got, err := GenerateSchedule(NewDate(2020, 2, 28), NewDate(2020, 3, 1), Daily, s)
		if err != nil {
			t.Fatalf("GenerateSchedule: %v", err)
		}
		want := Schedule{NewDate(2020, 2, 28), NewDate(2020, 3, 2)}
		if !slices.Equal(got, want) {
			t.Errorf("schedule = %v, want %v", got, want)
		}
	})

	t.Run("series exhausted stops generation", func(t *testing.T) {
		got, err := GenerateSchedule(NewDate(2020, 3, 30), NewDate(2020, 6, 30), Weekly, s)
		if err != nil {
			t.Fatalf("GenerateSchedule: %v", err)
		}
		// Only 2020-03-30 and 2020-03-31 exist; the 2020-04-06 cursor finds
		// no trading day and generation ends.
		want := Schedule{NewDate(2020, 3, 30)}
		if !slices.Equal(got, want) {
			t.Errorf("schedule = %v, want %v", got, want)
		}
	})

	t.Run("invalid frequency", func(t *testing.T) {
		if _, err := GenerateSchedule(NewDate(2020, 1, 1), NewDate(2020, 3, 31), Frequency(42), s); !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("error = %v, want ErrInvalidFrequency", err)
		}
	})

	t.Run("empty series", func(t *testing.T) {
		if _, err := GenerateSchedule(NewDate(2020, 1, 1), NewDate(2020, 3, 31), Monthly, nil); !errors.Is(err, ErrEmptyPriceSeries) {
			t.Errorf("error = %v, want ErrEmptyPriceSeries", err)
		}
	})
}
