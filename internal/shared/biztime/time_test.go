package biztime

import (
	"testing"
	"time"
)

func TestStartAndEndOfDayUTC(t *testing.T) {
	// Default location is UTC, so boundaries are plain UTC midnights.
	in := time.Date(2024, 6, 8, 15, 42, 7, 0, time.UTC)

	start := StartOfDayUTC(in)
	if !start.Equal(time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDayUTC = %v", start)
	}

	end := EndOfDayUTC(in)
	if !end.Equal(time.Date(2024, 6, 8, 23, 59, 59, 999999999, time.UTC)) {
		t.Errorf("EndOfDayUTC = %v", end)
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day different hours",
			a:    time.Date(2024, 6, 8, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 6, 8, 23, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2024, 6, 8, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2024, 6, 9, 0, 1, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same day-of-month different month",
			a:    time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 6, 8, 12, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSameHour(t *testing.T) {
	a := time.Date(2024, 6, 8, 9, 5, 0, 0, time.UTC)
	b := time.Date(2024, 6, 8, 9, 55, 0, 0, time.UTC)
	c := time.Date(2024, 6, 8, 10, 5, 0, 0, time.UTC)

	if !SameHour(a, b) {
		t.Error("expected same hour for 09:05 and 09:55")
	}
	if SameHour(a, c) {
		t.Error("expected different hour for 09:05 and 10:05")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-02-10", 29},
		{"2023-02-10", 28},
		{"2024-04-01", 30},
		{"2024-01-31", 31},
	}

	for _, tt := range tests {
		day, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := DaysInMonth(day); got != tt.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestParseDateInBizTimezone(t *testing.T) {
	got, err := ParseDateInBizTimezone("2024-06-08")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v", got)
	}

	if _, err := ParseDateInBizTimezone("08/06/2024"); err == nil {
		t.Error("expected error for invalid format")
	}
}
