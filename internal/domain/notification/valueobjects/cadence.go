package valueobjects

import (
	"fmt"
	"time"

	"github.com/tansyhq/tansy/internal/shared/biztime"
)

// Frequency is the repetition unit of a recurring rule.
type Frequency string

const (
	FrequencyHourly  Frequency = "hourly"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

var validFrequencies = map[Frequency]bool{
	FrequencyHourly:  true,
	FrequencyDaily:   true,
	FrequencyWeekly:  true,
	FrequencyMonthly: true,
}

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	return validFrequencies[f]
}

func NewFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %s", s)
	}
	return f, nil
}

// DefaultWeekday applies when a weekly cadence carries no weekday selector.
const DefaultWeekday = time.Monday

// Cadence describes when a recurring rule fires: a frequency plus the
// selectors that pin it to a wall-clock instant in the business timezone.
// Hourly cadences match on minute only; daily ones on hour and minute;
// weekly adds a weekday; monthly adds a day of month.
type Cadence struct {
	frequency Frequency
	atHour    int
	atMinute  int
	weekday   time.Weekday
	monthDay  int
}

func NewCadence(frequency Frequency, atHour, atMinute int, weekday time.Weekday, monthDay int) (Cadence, error) {
	if !frequency.IsValid() {
		return Cadence{}, fmt.Errorf("invalid frequency: %s", frequency)
	}
	if atHour < 0 || atHour > 23 {
		return Cadence{}, fmt.Errorf("hour out of range: %d", atHour)
	}
	if atMinute < 0 || atMinute > 59 {
		return Cadence{}, fmt.Errorf("minute out of range: %d", atMinute)
	}
	if weekday < time.Sunday || weekday > time.Saturday {
		return Cadence{}, fmt.Errorf("weekday out of range: %d", weekday)
	}
	if frequency == FrequencyMonthly && (monthDay < 1 || monthDay > 31) {
		return Cadence{}, fmt.Errorf("day of month out of range: %d", monthDay)
	}
	return Cadence{
		frequency: frequency,
		atHour:    atHour,
		atMinute:  atMinute,
		weekday:   weekday,
		monthDay:  monthDay,
	}, nil
}

func NewHourlyCadence(atMinute int) (Cadence, error) {
	return NewCadence(FrequencyHourly, 0, atMinute, DefaultWeekday, 0)
}

func NewDailyCadence(atHour, atMinute int) (Cadence, error) {
	return NewCadence(FrequencyDaily, atHour, atMinute, DefaultWeekday, 0)
}

func NewWeeklyCadence(weekday time.Weekday, atHour, atMinute int) (Cadence, error) {
	return NewCadence(FrequencyWeekly, atHour, atMinute, weekday, 0)
}

func NewMonthlyCadence(monthDay, atHour, atMinute int) (Cadence, error) {
	return NewCadence(FrequencyMonthly, atHour, atMinute, DefaultWeekday, monthDay)
}

func (c Cadence) Frequency() Frequency { return c.frequency }
func (c Cadence) AtHour() int          { return c.atHour }
func (c Cadence) AtMinute() int        { return c.atMinute }
func (c Cadence) Weekday() time.Weekday {
	return c.weekday
}
func (c Cadence) MonthDay() int { return c.monthDay }

func (c Cadence) IsZero() bool {
	return c == Cadence{}
}

// DueAt reports whether the cadence fires at now, given the instant of the
// last successful dispatch. Matching is done on the wall clock of the
// business timezone. A tick that passes unobserved is lost: there is no
// catch-up for missed instants, so lastDispatch only suppresses a second
// fire within the same hour (hourly) or day (all other frequencies).
func (c Cadence) DueAt(now time.Time, lastDispatch *time.Time) bool {
	local := biztime.ToBizTimezone(now)

	switch c.frequency {
	case FrequencyHourly:
		if local.Minute() != c.atMinute {
			return false
		}
		return lastDispatch == nil || !biztime.SameHour(*lastDispatch, now)
	case FrequencyDaily:
		if local.Hour() != c.atHour || local.Minute() != c.atMinute {
			return false
		}
	case FrequencyWeekly:
		if local.Weekday() != c.weekday || local.Hour() != c.atHour || local.Minute() != c.atMinute {
			return false
		}
	case FrequencyMonthly:
		// A selector past the end of a short month fires on its last day,
		// so day-31 rules still run in February and April.
		day := c.monthDay
		if last := biztime.DaysInMonth(now); day > last {
			day = last
		}
		if local.Day() != day || local.Hour() != c.atHour || local.Minute() != c.atMinute {
			return false
		}
	default:
		return false
	}

	return lastDispatch == nil || !biztime.SameDay(*lastDispatch, now)
}

func (c Cadence) String() string {
	switch c.frequency {
	case FrequencyHourly:
		return fmt.Sprintf("hourly at :%02d", c.atMinute)
	case FrequencyDaily:
		return fmt.Sprintf("daily at %02d:%02d", c.atHour, c.atMinute)
	case FrequencyWeekly:
		return fmt.Sprintf("weekly on %s at %02d:%02d", c.weekday, c.atHour, c.atMinute)
	case FrequencyMonthly:
		return fmt.Sprintf("monthly on day %d at %02d:%02d", c.monthDay, c.atHour, c.atMinute)
	default:
		return "unset"
	}
}
