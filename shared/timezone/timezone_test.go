package timezone_test

import (
	"testing"
	"time"
	"tripdesk/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestDayRange(t *testing.T) {
	loc := timezone.GetLocation()
	date := time.Date(2024, 6, 15, 13, 45, 30, 0, loc)

	start, end := timezone.DayRange(date)

	expectedStart := time.Date(2024, 6, 15, 0, 0, 0, 0, loc)
	if !start.Equal(expectedStart) {
		t.Errorf("expected start to be %v, got %v", expectedStart, start)
	}

	expectedEnd := expectedStart.Add(24*time.Hour - time.Nanosecond)
	if !end.Equal(expectedEnd) {
		t.Errorf("expected end to be %v, got %v", expectedEnd, end)
	}

	if !start.Before(end) {
		t.Error("expected start to be before end")
	}

	// Both boundaries stay inside the same calendar day.
	if start.Day() != 15 || end.Day() != 15 {
		t.Errorf("expected both boundaries on day 15, got start %d end %d", start.Day(), end.Day())
	}
}

func TestDayRangeCoversWholeDay(t *testing.T) {
	loc := timezone.GetLocation()
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, loc)

	start, end := timezone.DayRange(date)

	early := time.Date(2024, 6, 15, 0, 0, 0, 1, loc)
	late := time.Date(2024, 6, 15, 23, 59, 59, 0, loc)

	if early.Before(start) || early.After(end) {
		t.Error("expected an instant just after midnight to fall inside the range")
	}

	if late.Before(start) || late.After(end) {
		t.Error("expected the last second of the day to fall inside the range")
	}

	nextDay := time.Date(2024, 6, 16, 0, 0, 0, 0, loc)
	if !nextDay.After(end) {
		t.Error("expected the next midnight to fall outside the range")
	}
}
