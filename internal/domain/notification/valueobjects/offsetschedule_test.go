package valueobjects

import (
	"testing"
	"time"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestNewOffsetSchedule(t *testing.T) {
	t.Run("deduplicates offsets", func(t *testing.T) {
		s, err := NewOffsetSchedule([]int{30, 7, 7, 1})
		if err != nil {
			t.Fatal(err)
		}
		got := s.Values()
		want := []int{30, 7, 1}
		if len(got) != len(want) {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("rejects out of range offsets", func(t *testing.T) {
		if _, err := NewOffsetSchedule([]int{4000}); err == nil {
			t.Error("expected error for offset beyond range")
		}
		if _, err := NewOffsetSchedule([]int{-4000}); err == nil {
			t.Error("expected error for negative offset beyond range")
		}
	})

	t.Run("empty schedule is allowed but flagged", func(t *testing.T) {
		s, err := NewOffsetSchedule(nil)
		if err != nil {
			t.Fatal(err)
		}
		if !s.IsEmpty() {
			t.Error("expected IsEmpty() for nil offsets")
		}
	})
}

func TestTargetDates(t *testing.T) {
	s, err := NewOffsetSchedule([]int{7, 0, -3})
	if err != nil {
		t.Fatal(err)
	}

	today := date("2024-06-01")
	got := s.TargetDates(today)

	want := []time.Time{date("2024-06-08"), date("2024-06-01"), date("2024-05-29")}
	if len(got) != len(want) {
		t.Fatalf("TargetDates() = %v", got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("TargetDates()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTargetDateMonthBoundary(t *testing.T) {
	// AddDate carries over month ends without clamping surprises for day math.
	got := TargetDate(date("2024-01-31"), 1)
	if !got.Equal(date("2024-02-01")) {
		t.Errorf("TargetDate(+1) = %v", got)
	}
}

func TestWindow(t *testing.T) {
	s, err := NewOffsetSchedule([]int{30, 7, 1})
	if err != nil {
		t.Fatal(err)
	}

	today := date("2024-06-01")
	from, to, err := s.Window(today)
	if err != nil {
		t.Fatal(err)
	}
	if !from.Equal(date("2024-06-02")) {
		t.Errorf("window from = %v, want 2024-06-02", from)
	}
	if !to.Equal(date("2024-07-01")) {
		t.Errorf("window to = %v, want 2024-07-01", to)
	}
}

func TestWindowWithNegativeOffsets(t *testing.T) {
	s, err := NewOffsetSchedule([]int{7, -3})
	if err != nil {
		t.Fatal(err)
	}

	from, to, err := s.Window(date("2024-06-10"))
	if err != nil {
		t.Fatal(err)
	}
	if !from.Equal(date("2024-06-07")) {
		t.Errorf("window from = %v, want 2024-06-07", from)
	}
	if !to.Equal(date("2024-06-17")) {
		t.Errorf("window to = %v, want 2024-06-17", to)
	}
}

func TestWindowEmptySchedule(t *testing.T) {
	var s OffsetSchedule
	if _, _, err := s.Window(date("2024-06-01")); err == nil {
		t.Error("expected error for empty schedule window")
	}
}
