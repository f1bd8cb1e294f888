package valueobjects

import (
	"fmt"
	"time"
)

// maxOffsetDays bounds schedule offsets to ten years either side.
const maxOffsetDays = 3650

// OffsetSchedule is the set of day offsets an expiry rule evaluates.
// Positive offsets give advance notice (7 = one week before expiry),
// zero matches the expiry day itself, negative offsets follow up after
// expiry (-3 = three days past due).
type OffsetSchedule struct {
	offsets []int
}

func NewOffsetSchedule(offsets []int) (OffsetSchedule, error) {
	seen := make(map[int]bool, len(offsets))
	cleaned := make([]int, 0, len(offsets))
	for _, off := range offsets {
		if off > maxOffsetDays || off < -maxOffsetDays {
			return OffsetSchedule{}, fmt.Errorf("offset out of range: %d", off)
		}
		if seen[off] {
			continue
		}
		seen[off] = true
		cleaned = append(cleaned, off)
	}
	return OffsetSchedule{offsets: cleaned}, nil
}

func (s OffsetSchedule) IsEmpty() bool {
	return len(s.offsets) == 0
}

// Values returns a copy of the offsets in their configured order.
func (s OffsetSchedule) Values() []int {
	out := make([]int, len(s.offsets))
	copy(out, s.offsets)
	return out
}

// TargetDate resolves a single offset against a reference day: the rule
// matches records expiring exactly offset days after today.
func TargetDate(today time.Time, offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

// TargetDates resolves every offset of the schedule against today.
func (s OffsetSchedule) TargetDates(today time.Time) []time.Time {
	dates := make([]time.Time, 0, len(s.offsets))
	for _, off := range s.offsets {
		dates = append(dates, TargetDate(today, off))
	}
	return dates
}

// Window returns the inclusive [earliest, latest] target-date window spanned
// by the schedule, used by the manual trigger path to match every record the
// schedule could address today.
func (s OffsetSchedule) Window(today time.Time) (time.Time, time.Time, error) {
	if s.IsEmpty() {
		return time.Time{}, time.Time{}, fmt.Errorf("schedule has no offsets")
	}
	min, max := s.offsets[0], s.offsets[0]
	for _, off := range s.offsets[1:] {
		if off < min {
			min = off
		}
		if off > max {
			max = off
		}
	}
	return TargetDate(today, min), TargetDate(today, max), nil
}

func (s OffsetSchedule) String() string {
	return fmt.Sprintf("offsets %v", s.offsets)
}
